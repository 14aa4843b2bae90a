package core

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/PuerkitoBio/goquery"
)

// ConvertOptions describes a single conversion run.
type ConvertOptions struct {
	// InputPath is the bookmarks HTML export to read.
	InputPath string
	// OutputPath is the file the result is written to.
	OutputPath string
	// Format selects the output encoding: "json" (default) or "yaml".
	Format string
	// Extract is passed through to the extractor.
	Extract ExtractOptions
}

// ConvertResult reports the outcome of a conversion run.
type ConvertResult struct {
	Groups    []Group
	Bookmarks int
	// Nested lists folders whose links were flattened into a top-level group.
	Nested []NestedFolder
}

// Load reads the raw bookmarks export.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	return data, nil
}

// Parse builds a queryable document from the raw export.
func Parse(raw []byte) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse bookmarks HTML: %w", err)
	}
	return doc, nil
}

// Save encodes groups and writes them to path.
//
// The file is written to a temporary sibling first and renamed into place, so
// a failed write never leaves a partial result behind.
func Save(path string, groups []Group, format string) error {
	data, err := Encode(groups, format)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	tmpName := tmp.Name()
	defer func() {
		// No-op once the rename succeeded.
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &WriteError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// ReadGroups loads and parses an export and extracts its groups.
func ReadGroups(path string, opts ExtractOptions) ([]Group, []NestedFolder, error) {
	log.Printf("Read bookmarks from %s", path)
	raw, err := Load(path)
	if err != nil {
		return nil, nil, err
	}
	doc, err := Parse(raw)
	if err != nil {
		return nil, nil, err
	}

	log.Println("Process bookmarks")
	groups := Extract(doc, opts)
	var nested []NestedFolder
	if !opts.DirectOnly {
		nested = NestedFolders(doc)
	}
	return groups, nested, nil
}

// Convert runs the whole pipeline: load, parse, extract, save. Each stage
// starts only after the previous one succeeded.
func Convert(opts ConvertOptions) (ConvertResult, error) {
	groups, nested, err := ReadGroups(opts.InputPath, opts.Extract)
	if err != nil {
		return ConvertResult{}, err
	}

	log.Printf("Save results to %s", opts.OutputPath)
	if err := Save(opts.OutputPath, groups, opts.Format); err != nil {
		return ConvertResult{}, err
	}

	return ConvertResult{
		Groups:    groups,
		Bookmarks: CountBookmarks(groups),
		Nested:    nested,
	}, nil
}

// CountBookmarks returns the number of bookmarks across all groups.
func CountBookmarks(groups []Group) int {
	var n int
	for _, g := range groups {
		n += len(g.Bookmarks)
	}
	return n
}
