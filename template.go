package md2cv

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/cvkit/md2cv/internal/assets"
)

// Template resolution errors, surfaced from internal/assets so callers can
// match them with errors.Is.
var (
	ErrTemplateNotFound    = assets.ErrTemplateNotFound
	ErrTemplateFileMissing = assets.ErrTemplateFileMissing
)

// contactSeparator joins contact and link values on header lines.
const contactSeparator = " | "

// contactFields and linkFields are the metadata keys consumed by the
// contact header, in display order.
var (
	contactFields = []string{"email", "phone", "location"}
	linkFields    = []string{"linkedin", "github", "website"}
)

// templateData is the variable set exposed to template.html.
// Meta values are auto-escaped by html/template; Content is already-generated
// markup and is inserted unescaped.
type templateData struct {
	Meta    Metadata
	Contact string // present contact values joined with contactSeparator
	Links   string // present link values joined with contactSeparator
	Content template.HTML
}

// renderedDocument is a fully rendered HTML document plus the styling the
// PDF exporter needs.
type renderedDocument struct {
	HTML    string
	CSS     string // template stylesheet content, "" when the template has none
	BaseDir string // directory for relative asset references, "" for embedded
}

// templateRenderer merges metadata and converted body HTML into a named
// template's skeleton.
type templateRenderer struct {
	resolver *assets.Resolver
}

// newTemplateRenderer creates a renderer backed by embedded templates plus
// an optional user template directory.
func newTemplateRenderer(templatesDir string) (*templateRenderer, error) {
	resolver, err := assets.NewResolver(templatesDir)
	if err != nil {
		return nil, err
	}
	return &templateRenderer{resolver: resolver}, nil
}

// Render loads the named template and executes it with the document's
// metadata and body HTML.
func (r *templateRenderer) Render(name string, meta Metadata, bodyHTML string) (*renderedDocument, error) {
	tpl, err := r.resolver.Load(name)
	if err != nil {
		return nil, err
	}

	t, err := template.New(name).Parse(tpl.HTML)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrTemplateRender, assets.TemplateFile, err)
	}

	data := templateData{
		Meta:    meta,
		Contact: joinPresent(meta, contactFields),
		Links:   joinPresent(meta, linkFields),
		Content: template.HTML(bodyHTML), // #nosec G203 -- generated by the Markdown converter, not raw user HTML
	}

	var buf strings.Builder
	if err := t.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}

	return &renderedDocument{
		HTML:    buf.String(),
		CSS:     tpl.CSS,
		BaseDir: tpl.BaseDir,
	}, nil
}

// joinPresent joins the non-empty scalar values of keys, preserving order.
// Returns "" when every field is absent so the template can omit the line.
func joinPresent(meta Metadata, keys []string) string {
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		if v := meta.Get(key); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, contactSeparator)
}
