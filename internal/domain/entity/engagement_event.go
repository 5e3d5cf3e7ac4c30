package entity

import "time"

type EngagementKind string

const (
	EngagementView EngagementKind = "view"
	EngagementLike EngagementKind = "like"
)

// EngagementEvent is published after an album counter changes.
type EngagementEvent struct {
	Kind     EngagementKind `json:"kind"`
	AlbumID  string         `json:"album_id"`
	Identity string         `json:"identity,omitempty"`
	Count    int64          `json:"count"`
	At       time.Time      `json:"at"`
}
