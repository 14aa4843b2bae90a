package core

// Default file locations, relative to the working directory
const (
	DefaultInputPath  = "data/GoogleBookmarks.html"
	DefaultOutputPath = "data/result.json"
)

// Output formats accepted by Save
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Selectors and attributes of the Netscape bookmark layout
const (
	folderSelector  = "body > dl > dt"
	linkSelector    = "dl > dt > a"
	headingSelector = "h3"
	addDateAttr     = "add_date"
	hrefAttr        = "href"
)

// Date limits
const (
	// maxDateMillis is the largest absolute epoch offset a date may have.
	maxDateMillis = 8.64e15
)
