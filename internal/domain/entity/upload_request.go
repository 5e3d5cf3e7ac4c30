package entity

import (
	"io"
)

// UploadFile is one photo of an album upload, still unread.
type UploadFile struct {
	Name string
	Size int64
	Open func() (io.ReadCloser, error)
}

// AlbumDraft carries the already-normalised form fields of an upload.
type AlbumDraft struct {
	Title        string   `validate:"max=200"`
	Description  string   `validate:"max=5000"`
	Category     string   `validate:"max=100"`
	Tags         []string `validate:"max=100,dive,max=100"`
	WatchLink    string
	DownloadLink string
	ExtraLinks   []string
}
