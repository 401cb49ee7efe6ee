package constants

import (
	"path"
	"strings"
)

// AllowedImageExtensions holds the file extensions the embedding sweep accepts.
var AllowedImageExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"webp": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsImageURI reports whether uri ends with a recognized image extension.
func IsImageURI(uri string) bool {
	_, ok := AllowedImageExtensions[NormalizeExt(path.Ext(uri))]
	return ok
}
