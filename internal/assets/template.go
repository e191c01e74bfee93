// Package assets locates and loads CV templates. A template is a directory
// named after the template containing a required template.html and an
// optional style.css. Templates come from two places: the embedded defaults
// compiled into the binary, and an optional user directory that overrides
// embedded templates by name.
package assets

// TemplateFile is the required markup file inside a template directory.
const TemplateFile = "template.html"

// StyleFile is the optional stylesheet file inside a template directory.
const StyleFile = "style.css"

// Template holds the loaded contents of one template directory.
type Template struct {
	Name    string // template identifier
	HTML    string // template.html content
	CSS     string // style.css content, "" when the file is absent
	BaseDir string // directory for resolving relative assets, "" for embedded
}

// Info describes a discovered template for enumeration (--list-templates).
type Info struct {
	Name        string
	HasTemplate bool // required template.html present
	HasCSS      bool
	Source      string // "embedded" or "custom"
}

// Loader defines the contract for finding and loading templates.
type Loader interface {
	// Load returns the named template.
	// Returns ErrTemplateNotFound if no such directory exists and
	// ErrTemplateFileMissing if the directory lacks template.html.
	Load(name string) (*Template, error)

	// List enumerates the template directories the loader can see.
	List() ([]Info, error)
}
