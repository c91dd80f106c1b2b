package assets

import "errors"

// Sentinel errors for asset operations. Loaders wrap them with the asset
// name so callers can both match with errors.Is and report the offender.
var (
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvalidAssetName rejects names carrying separators, dots, or
	// traversal sequences.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath rejects a filesystem loader base that is missing,
	// unreadable, or not a directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	ErrAssetRead = errors.New("failed to read asset")

	// ErrPathTraversal flags a resolved asset path escaping the base
	// directory.
	ErrPathTraversal = errors.New("path traversal detected")
)
