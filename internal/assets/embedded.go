package assets

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed templates/*
var embeddedTemplates embed.FS

// EmbeddedLoader loads templates compiled into the binary.
// Implements the Loader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// Load returns an embedded template by name.
func (e *EmbeddedLoader) Load(name string) (*Template, error) {
	if err := ValidateTemplateName(name); err != nil {
		return nil, err
	}

	dir := "templates/" + name
	if _, err := fs.Stat(embeddedTemplates, dir); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	html, err := embeddedTemplates.ReadFile(dir + "/" + TemplateFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrTemplateFileMissing, name)
	}

	// Stylesheet is optional; absence simply means no extra styling.
	css, err := embeddedTemplates.ReadFile(dir + "/" + StyleFile)
	if err != nil {
		css = nil
	}

	return &Template{
		Name: name,
		HTML: string(html),
		CSS:  string(css),
	}, nil
}

// List enumerates the embedded template directories.
func (e *EmbeddedLoader) List() ([]Info, error) {
	entries, err := embeddedTemplates.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}

	infos := make([]Info, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		infos = append(infos, Info{
			Name:        name,
			HasTemplate: embeddedFileExists("templates/" + name + "/" + TemplateFile),
			HasCSS:      embeddedFileExists("templates/" + name + "/" + StyleFile),
			Source:      "embedded",
		})
	}
	return infos, nil
}

// embeddedFileExists reports whether the embedded FS contains the file.
func embeddedFileExists(path string) bool {
	info, err := fs.Stat(embeddedTemplates, path)
	return err == nil && !info.IsDir()
}

// Compile-time interface check.
var _ Loader = (*EmbeddedLoader)(nil)
