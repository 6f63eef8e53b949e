package assets

import "errors"

// Sentinel errors for asset loading.
var (
	ErrStyleNotFound    = errors.New("style not found")
	ErrShellNotFound    = errors.New("page shell not found")
	ErrInvalidAssetName = errors.New("invalid asset name")
)
