package assets

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Resolver combines a custom filesystem loader with the embedded loader.
// Custom templates take precedence; embedded templates serve as fallback.
type Resolver struct {
	custom   Loader // nil if no custom directory configured
	embedded Loader
}

// NewResolver creates a Resolver. If customBasePath is empty only embedded
// templates are used. Returns error if customBasePath is set but invalid.
func NewResolver(customBasePath string) (*Resolver, error) {
	r := &Resolver{embedded: NewEmbeddedLoader()}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		r.custom = fsLoader
	}

	return r, nil
}

// Load returns the named template, trying the custom loader first.
// A "not found" from the Resolver carries the list of available template
// names so the caller's error message can enumerate the alternatives.
func (r *Resolver) Load(name string) (*Template, error) {
	if r.custom != nil {
		tpl, err := r.custom.Load(name)
		if err == nil {
			return tpl, nil
		}
		// Only fall back for "not found"; validation and I/O errors are final.
		if !errors.Is(err, ErrTemplateNotFound) {
			return nil, err
		}
	}

	tpl, err := r.embedded.Load(name)
	if err == nil {
		return tpl, nil
	}
	if errors.Is(err, ErrTemplateNotFound) {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrTemplateNotFound, name, strings.Join(r.availableNames(), ", "))
	}
	return nil, err
}

// List merges custom and embedded template listings. A custom template
// shadows an embedded one with the same name.
func (r *Resolver) List() ([]Info, error) {
	seen := map[string]bool{}
	var infos []Info

	if r.custom != nil {
		customInfos, err := r.custom.List()
		if err != nil {
			return nil, err
		}
		for _, info := range customInfos {
			seen[info.Name] = true
			infos = append(infos, info)
		}
	}

	embeddedInfos, err := r.embedded.List()
	if err != nil {
		return nil, err
	}
	for _, info := range embeddedInfos {
		if !seen[info.Name] {
			infos = append(infos, info)
		}
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

// availableNames returns the sorted names of loadable templates for error
// messages. Listing failures degrade to an empty list rather than masking
// the original "not found".
func (r *Resolver) availableNames() []string {
	infos, err := r.List()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		if info.HasTemplate {
			names = append(names, info.Name)
		}
	}
	return names
}

// Compile-time interface check.
var _ Loader = (*Resolver)(nil)
