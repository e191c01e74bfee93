package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemLoader loads templates from subdirectories of a base directory.
// Implements the Loader interface.
type FilesystemLoader struct {
	basePath string
}

// NewFilesystemLoader creates a FilesystemLoader for the given base path.
// Returns ErrInvalidBasePath if the path is not a valid, readable directory.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	// Resolve symlinks in the base path so containment checks compare
	// real paths.
	realPath, err := filepath.EvalSymlinks(absPath)
	if err == nil {
		absPath = realPath
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, absPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, absPath)
	}

	return &FilesystemLoader{basePath: absPath}, nil
}

// Load returns the named template from {basePath}/{name}/.
func (f *FilesystemLoader) Load(name string) (*Template, error) {
	if err := ValidateTemplateName(name); err != nil {
		return nil, err
	}

	dirPath := filepath.Join(f.basePath, name)
	if err := f.verifyPathContainment(dirPath + string(filepath.Separator)); err != nil {
		return nil, err
	}

	if info, err := os.Stat(dirPath); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	html, err := os.ReadFile(filepath.Join(dirPath, TemplateFile)) // #nosec G304 -- path validated above
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", ErrTemplateFileMissing, name)
		}
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}

	// Stylesheet is optional; absence simply means no extra styling.
	css, err := os.ReadFile(filepath.Join(dirPath, StyleFile)) // #nosec G304 -- path validated above
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
		}
		css = nil
	}

	return &Template{
		Name:    name,
		HTML:    string(html),
		CSS:     string(css),
		BaseDir: dirPath,
	}, nil
}

// List enumerates the template directories under the base path.
func (f *FilesystemLoader) List() ([]Info, error) {
	entries, err := os.ReadDir(f.basePath)
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
			HasTemplate: fileExists(filepath.Join(f.basePath, name, TemplateFile)),
			HasCSS:      fileExists(filepath.Join(f.basePath, name, StyleFile)),
			Source:      "custom",
		})
	}
	return infos, nil
}

// verifyPathContainment ensures the resolved path stays within basePath.
// Prevents traversal even if name validation is bypassed.
func (f *FilesystemLoader) verifyPathContainment(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path", ErrPathTraversal)
	}

	realPath, err := filepath.EvalSymlinks(absPath)
	if err == nil {
		absPath = realPath
	}

	if !strings.HasPrefix(absPath, f.basePath+string(filepath.Separator)) {
		return fmt.Errorf("%w: path escapes base directory", ErrPathTraversal)
	}
	return nil
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// Compile-time interface check.
var _ Loader = (*FilesystemLoader)(nil)
