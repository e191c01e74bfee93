package assets

import "errors"

// Sentinel errors for template loading operations.
var (
	ErrTemplateNotFound    = errors.New("template not found")
	ErrTemplateFileMissing = errors.New("template directory missing template.html")
	ErrInvalidTemplateName = errors.New("invalid template name")
	ErrInvalidBasePath     = errors.New("invalid template base path")
	ErrAssetRead           = errors.New("failed to read template asset")
	ErrPathTraversal       = errors.New("path traversal attempt detected")
)
