package utils

import "strings"

// mimeTypeToExtension maps the media types a gallery accepts to their usual
// file extensions.
var mimeTypeToExtension = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"video/mp4":  ".mp4",
	"video/webm": ".webm",
}

// GetExtensionFromMimeType returns a common file extension for a given MIME type.
// If no specific extension is found, it defaults to ".bin".
func GetExtensionFromMimeType(mimeType string) string {
	if ext, ok := mimeTypeToExtension[cleanMimeType(mimeType)]; ok {
		return ext
	}

	return ".bin"
}

// IsAllowedMediaType reports whether files of mimeType may be stored.
func IsAllowedMediaType(mimeType string) bool {
	_, ok := mimeTypeToExtension[cleanMimeType(mimeType)]

	return ok
}

func cleanMimeType(mimeType string) string {
	// Remove charset if present (e.g., "text/plain; charset=utf-8")
	return strings.TrimSpace(strings.Split(mimeType, ";")[0])
}
