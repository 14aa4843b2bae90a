package core

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Group is one top-level bookmark folder.
type Group struct {
	GroupTitle string     `json:"groupTitle" yaml:"groupTitle"`
	DateRaw    *string    `json:"dateRaw,omitempty" yaml:"dateRaw,omitempty"`
	Date       *Date      `json:"date,omitempty" yaml:"date,omitempty"`
	Bookmarks  []Bookmark `json:"bookmarks" yaml:"bookmarks"`
}

// Bookmark is one link entry of a folder.
type Bookmark struct {
	Title   string  `json:"title" yaml:"title"`
	Href    *string `json:"href,omitempty" yaml:"href,omitempty"`
	DateRaw *string `json:"dateRaw,omitempty" yaml:"dateRaw,omitempty"`
	Date    *Date   `json:"date,omitempty" yaml:"date,omitempty"`
}

// ExtractOptions controls how links are matched inside a folder.
type ExtractOptions struct {
	// DirectOnly keeps only the links listed directly in a folder. By default
	// links of nested folders are flattened into their top-level folder.
	DirectOnly bool
}

// NestedFolder names the sub-folders whose links were flattened into a
// top-level group.
type NestedFolder struct {
	GroupTitle string
	Folders    []string
}

// Extract walks the top-level folders of a parsed bookmarks export and returns
// one Group per folder, in document order. It never fails: missing attributes
// are left absent and an empty document yields an empty slice.
func Extract(doc *goquery.Document, opts ExtractOptions) []Group {
	groups := make([]Group, 0)
	doc.Find(folderSelector).Each(func(_ int, folder *goquery.Selection) {
		groups = append(groups, extractGroup(folder, opts))
	})
	return groups
}

// NestedFolders lists, per top-level folder, the nested folders whose links
// Extract flattens into it. Folders without nesting are left out.
func NestedFolders(doc *goquery.Document) []NestedFolder {
	var out []NestedFolder
	doc.Find(folderSelector).Each(func(_ int, folder *goquery.Selection) {
		var names []string
		folder.ChildrenFiltered("dl").Find("dt > " + headingSelector).Each(func(_ int, h *goquery.Selection) {
			names = append(names, strings.TrimSpace(h.Text()))
		})
		if len(names) == 0 {
			return
		}
		out = append(out, NestedFolder{
			GroupTitle: strings.TrimSpace(folderHeading(folder).Text()),
			Folders:    names,
		})
	})
	return out
}

func extractGroup(folder *goquery.Selection, opts ExtractOptions) Group {
	heading := folderHeading(folder)
	dateRaw, date := dateProperties(heading)

	g := Group{
		GroupTitle: strings.TrimSpace(heading.Text()),
		DateRaw:    dateRaw,
		Date:       date,
		Bookmarks:  make([]Bookmark, 0),
	}

	links(folder, opts).Each(func(_ int, a *goquery.Selection) {
		b := Bookmark{Title: a.Text()}
		if href, ok := a.Attr(hrefAttr); ok {
			b.Href = &href
		}
		b.DateRaw, b.Date = dateProperties(a)
		g.Bookmarks = append(g.Bookmarks, b)
	})

	return g
}

// folderHeading returns the folder's own heading, falling back to the first
// heading found anywhere below the folder node.
func folderHeading(folder *goquery.Selection) *goquery.Selection {
	if h := folder.ChildrenFiltered(headingSelector).First(); h.Length() > 0 {
		return h
	}
	return folder.Find(headingSelector).First()
}

func links(folder *goquery.Selection, opts ExtractOptions) *goquery.Selection {
	if opts.DirectOnly {
		return folder.ChildrenFiltered("dl").ChildrenFiltered("dt").ChildrenFiltered("a")
	}
	return folder.Find(linkSelector)
}

func dateProperties(s *goquery.Selection) (*string, *Date) {
	raw, ok := s.Attr(addDateAttr)
	if !ok {
		return nil, nil
	}
	return &raw, ParseDate(raw)
}
