package entity

// StoredObject describes one file written to the media store.
type StoredObject struct {
	ObjectName string `json:"object_name"`
	Location   string `json:"location"`
	Bucket     string `json:"bucket"`
	Type       string `json:"type"`
	Size       int64  `json:"size"`
}
