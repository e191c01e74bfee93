package md2cv

import (
	"regexp"
	"strings"

	"github.com/cvkit/md2cv/internal/docx"
)

// The DOCX path does not go through HTML. Markdown is classified line by
// line into a flat block sequence, inline markers are stripped to plain
// text, and each block maps to a styled Word paragraph. Flat styled output
// survives ATS parsers that choke on tables and text boxes.

// blockKind classifies one flushed block of CV markdown.
type blockKind int

const (
	blockHeading1 blockKind = iota
	blockHeading2
	blockItalicPara
	blockBoldPara
	blockPara
	blockList
)

// block is one unit of DOCX output: a heading, a paragraph, or a run of
// consecutive list items.
type block struct {
	kind  blockKind
	text  string
	items []string
}

// Inline cleanup patterns, applied in order: bold before emphasis so **x**
// is not half-consumed, links keep their label, raw HTML tags drop.
var (
	reBold   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reItalic = regexp.MustCompile(`\*(.+?)\*`)
	reLink   = regexp.MustCompile(`\[(.+?)\]\(.+?\)`)
	reTag    = regexp.MustCompile(`<[^>]+>`)
)

// cleanInline strips markdown emphasis, link syntax, and HTML tags from a
// line, leaving plain text. Idempotent on its own output.
func cleanInline(line string) string {
	line = reBold.ReplaceAllString(line, "$1")
	line = reItalic.ReplaceAllString(line, "$1")
	line = reLink.ReplaceAllString(line, "$1")
	line = reTag.ReplaceAllString(line, "")
	return strings.TrimSpace(line)
}

// parseBlocks classifies the markdown body line by line. Consecutive list
// items accumulate into a single list block; any non-list line flushes them
// first, so list grouping depends only on adjacency.
func parseBlocks(body string) []block {
	var blocks []block
	var pendingList []string

	flushList := func() {
		if len(pendingList) > 0 {
			blocks = append(blocks, block{kind: blockList, items: pendingList})
			pendingList = nil
		}
	}

	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			flushList()

		case strings.HasPrefix(trimmed, "---"), strings.HasPrefix(trimmed, "<!--"):
			// Horizontal rules and comments have no DOCX counterpart.
			flushList()

		case strings.HasPrefix(trimmed, "# "):
			flushList()
			blocks = append(blocks, block{kind: blockHeading1, text: strings.TrimSpace(trimmed[2:])})

		case strings.HasPrefix(trimmed, "## "):
			flushList()
			blocks = append(blocks, block{kind: blockHeading2, text: strings.TrimSpace(trimmed[3:])})

		case strings.HasPrefix(trimmed, "### "):
			flushList()
			blocks = append(blocks, block{kind: blockItalicPara, text: strings.TrimSpace(trimmed[4:])})

		case strings.HasPrefix(trimmed, "- "), strings.HasPrefix(trimmed, "* "):
			pendingList = append(pendingList, cleanInline(trimmed[2:]))

		case strings.HasPrefix(trimmed, "**") && strings.HasSuffix(trimmed, "**") && len(trimmed) > 4:
			flushList()
			blocks = append(blocks, block{kind: blockBoldPara, text: trimmed[2 : len(trimmed)-2]})

		default:
			flushList()
			if text := cleanInline(trimmed); text != "" {
				blocks = append(blocks, block{kind: blockPara, text: text})
			}
		}
	}
	flushList()

	return blocks
}

// sectionDivider visually separates the contact header from the CV body.
var sectionDivider = strings.Repeat("_", 60)

// writeContactHeader emits the centered header paragraphs built from
// metadata: name as the document title, professional title in italics, then
// contact details and links joined with " | ". Absent fields leave no empty
// lines. Returns the number of paragraphs written.
func writeContactHeader(doc *docx.Document, meta Metadata) int {
	wrote := 0

	if name := meta.Get("name"); name != "" {
		doc.AddTitle(name)
		wrote++
	}
	if title := meta.Get("title"); title != "" {
		doc.AddParagraph(title, docx.Italic(), docx.Centered())
		wrote++
	}
	if contact := joinPresent(meta, contactFields); contact != "" {
		doc.AddParagraph(contact, docx.Centered())
		wrote++
	}
	if links := joinPresent(meta, linkFields); links != "" {
		doc.AddParagraph(links, docx.Centered())
		wrote++
	}

	return wrote
}

// docxStyles maps template names to DOCX style sets, so templates can carry
// matching Word styling. Unknown and custom templates fall back to the
// default set rather than failing the structural path.
var docxStyles = map[string]docx.Styles{
	"ats_classic": docx.DefaultStyles(),
}

// stylesForTemplate returns the DOCX style set registered for a template.
func stylesForTemplate(name string) docx.Styles {
	if s, ok := docxStyles[name]; ok {
		return s
	}
	return docx.DefaultStyles()
}

// buildDocxDocument assembles the complete DOCX: contact header, divider,
// then the classified body blocks.
func buildDocxDocument(meta Metadata, body, templateName string) *docx.Document {
	doc := docx.New(stylesForTemplate(templateName))

	headerLines := writeContactHeader(doc, meta)
	blocks := parseBlocks(body)

	if headerLines > 0 && len(blocks) > 0 {
		doc.AddParagraph(sectionDivider, docx.Centered())
	}

	appendBlocks(doc, blocks)
	return doc
}

// appendBlocks maps classified blocks onto styled paragraphs.
func appendBlocks(doc *docx.Document, blocks []block) {
	for _, b := range blocks {
		switch b.kind {
		case blockHeading1:
			doc.AddHeading(1, b.text)
		case blockHeading2:
			doc.AddHeading(2, b.text)
		case blockItalicPara:
			doc.AddParagraph(b.text, docx.Italic())
		case blockBoldPara:
			doc.AddParagraph(b.text, docx.Bold())
		case blockPara:
			doc.AddParagraph(b.text)
		case blockList:
			for _, item := range b.items {
				doc.AddBullet(item)
			}
		}
	}
}
