package md2cv

import (
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/goccy/go-yaml"
)

// yamlFrontmatter recognizes a "---" delimited YAML block at the very start
// of the input. The decoder is goccy/go-yaml, the same library used for
// config parsing, so frontmatter and config accept identical YAML.
var yamlFrontmatter = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// SplitFrontmatter separates a leading YAML frontmatter block from the
// Markdown body. When no frontmatter is present the returned document has
// empty metadata and a body identical to the input. A delimited block that
// fails to parse as YAML is a fatal ErrInvalidMetadata; frontmatter anywhere
// but the first line is ordinary body content.
func SplitFrontmatter(content string) (Document, error) {
	meta := Metadata{}

	body, err := frontmatter.Parse(strings.NewReader(content), &meta, yamlFrontmatter)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidMetadata, err)
	}
	if meta == nil {
		meta = Metadata{}
	}

	return Document{Meta: meta, Body: string(body)}, nil
}
