// Package docx writes minimal WordprocessingML documents. It produces the
// flat, style-driven output ATS parsers handle best: styled paragraphs,
// headings, and single-level bullet lists inside a standard OPC zip
// container. It is not a general DOCX library.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

// Style identifiers referenced from styles.xml.
const (
	styleTitle    = "Title"
	styleHeading1 = "Heading1"
	styleHeading2 = "Heading2"
	styleListItem = "ListParagraph"
)

// Styles configures the fonts and point sizes baked into styles.xml.
type Styles struct {
	BodyFont    string
	BodySizePt  int
	HeadingFont string
	TitleSizePt int
	H1SizePt    int
	H2SizePt    int
}

// DefaultStyles returns the standard CV style set: Georgia body text with
// Arial headings.
func DefaultStyles() Styles {
	return Styles{
		BodyFont:    "Georgia",
		BodySizePt:  11,
		HeadingFont: "Arial",
		TitleSizePt: 20,
		H1SizePt:    14,
		H2SizePt:    12,
	}
}

// paragraph is the internal representation accumulated by the builder.
type paragraph struct {
	style    string
	bullet   bool
	centered bool
	bold     bool
	italic   bool
	text     string
}

// Document accumulates paragraphs and serializes them as a .docx package.
// The zero value is not usable; construct with New.
type Document struct {
	styles     Styles
	paragraphs []paragraph
}

// New creates an empty document using the given style set.
func New(styles Styles) *Document {
	return &Document{styles: styles}
}

// ParagraphOption adjusts formatting of a single paragraph.
type ParagraphOption func(*paragraph)

// Bold renders the paragraph's text in bold.
func Bold() ParagraphOption {
	return func(p *paragraph) { p.bold = true }
}

// Italic renders the paragraph's text in italics.
func Italic() ParagraphOption {
	return func(p *paragraph) { p.italic = true }
}

// Centered center-aligns the paragraph.
func Centered() ParagraphOption {
	return func(p *paragraph) { p.centered = true }
}

// AddTitle appends a document title paragraph (centered, large, bold).
func (d *Document) AddTitle(text string) {
	d.paragraphs = append(d.paragraphs, paragraph{style: styleTitle, text: text})
}

// AddHeading appends a section heading. Level 1 maps to Heading1, any other
// level to Heading2.
func (d *Document) AddHeading(level int, text string) {
	style := styleHeading2
	if level == 1 {
		style = styleHeading1
	}
	d.paragraphs = append(d.paragraphs, paragraph{style: style, text: text})
}

// AddParagraph appends a body paragraph.
func (d *Document) AddParagraph(text string, opts ...ParagraphOption) {
	p := paragraph{text: text}
	for _, opt := range opts {
		opt(&p)
	}
	d.paragraphs = append(d.paragraphs, p)
}

// AddBullet appends a single bullet list item. Consecutive bullets render as
// one visual list.
func (d *Document) AddBullet(text string) {
	d.paragraphs = append(d.paragraphs, paragraph{style: styleListItem, bullet: true, text: text})
}

// Len returns the number of paragraphs added so far.
func (d *Document) Len() int {
	return len(d.paragraphs)
}

// WriteTo serializes the document as a zip package to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	docXML, err := d.documentXML()
	if err != nil {
		return 0, err
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/styles.xml", stylesXML(d.styles)},
		{"word/numbering.xml", numberingXML},
		{"word/document.xml", docXML},
	}
	for _, part := range parts {
		f, err := zw.Create(part.name)
		if err != nil {
			return 0, fmt.Errorf("creating zip entry %s: %w", part.name, err)
		}
		if _, err := f.Write([]byte(part.content)); err != nil {
			return 0, fmt.Errorf("writing zip entry %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return 0, fmt.Errorf("finalizing zip: %w", err)
	}

	return buf.WriteTo(w)
}

// SaveFile writes the document to path, creating or truncating the file.
func (d *Document) SaveFile(path string) error {
	f, err := os.Create(path) // #nosec G304 -- caller controls the output path
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := d.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// documentXML marshals the accumulated paragraphs as word/document.xml.
func (d *Document) documentXML() (string, error) {
	body := xmlBody{SectPr: defaultSectPr()}
	for _, p := range d.paragraphs {
		body.Paragraphs = append(body.Paragraphs, toXMLParagraph(p))
	}

	out, err := xml.Marshal(xmlDocument{NS: wordprocessingmlNS, Body: body})
	if err != nil {
		return "", fmt.Errorf("marshaling document body: %w", err)
	}
	return xml.Header + string(out), nil
}

func toXMLParagraph(p paragraph) xmlParagraph {
	var props *xmlParaProps
	if p.style != "" || p.centered || p.bullet {
		props = &xmlParaProps{}
		if p.style != "" {
			props.Style = &xmlVal{Val: p.style}
		}
		if p.bullet {
			props.NumProp = &xmlNumProps{
				Level: xmlVal{Val: "0"},
				NumID: xmlVal{Val: bulletNumID},
			}
		}
		if p.centered {
			props.Justify = &xmlVal{Val: "center"}
		}
	}

	var runProps *xmlRunProps
	if p.bold || p.italic {
		runProps = &xmlRunProps{}
		if p.bold {
			runProps.Bold = &xmlEmpty{}
		}
		if p.italic {
			runProps.Italic = &xmlEmpty{}
		}
	}

	run := xmlRun{Props: runProps, Text: xmlText{Text: p.text}}
	if text := p.text; text != strings.TrimSpace(text) {
		run.Text.Space = "preserve"
	}

	return xmlParagraph{Props: props, Runs: []xmlRun{run}}
}
