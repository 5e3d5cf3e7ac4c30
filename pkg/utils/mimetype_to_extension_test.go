package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetExtensionFromMimeType(t *testing.T) {
	tests := []struct {
		mimeType string
		ext      string
		allowed  bool
	}{
		{"image/jpeg", ".jpg", true},
		{"image/png", ".png", true},
		{"image/webp", ".webp", true},
		{"video/mp4", ".mp4", true},
		{"video/webm", ".webm", true},
		{"image/png; charset=binary", ".png", true},
		{"text/plain; charset=utf-8", ".bin", false},
		{"image/gif", ".bin", false},
		{"", ".bin", false},
	}

	for _, tt := range tests {
		t.Run(tt.mimeType, func(t *testing.T) {
			assert.Equal(t, tt.ext, GetExtensionFromMimeType(tt.mimeType))
			assert.Equal(t, tt.allowed, IsAllowedMediaType(tt.mimeType))
		})
	}
}
