package entity

import (
	"time"

	"github.com/google/uuid"
)

// LiveWindow is how long an event counts as live after it starts.
const LiveWindow = 3 * time.Hour

// SportsEvent is one live or upcoming broadcast available on a streaming service.
type SportsEvent struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	League           string     `json:"league"`
	Teams            []string   `json:"teams"`
	StartTime        time.Time  `json:"startTime"`
	EndTime          *time.Time `json:"endTime,omitempty"`
	IsLive           bool       `json:"isLive"`
	IsUpcoming       bool       `json:"isUpcoming"`
	Network          string     `json:"network"`
	StreamingService string     `json:"streamingService"`
	DeepLink         string     `json:"deepLink"`
	Description      string     `json:"description,omitempty"`
	ThumbnailURL     string     `json:"thumbnailUrl,omitempty"`
}

// IsAiring reports whether now falls within [start, start+window].
func IsAiring(start, now time.Time, window time.Duration) bool {
	return !now.Before(start) && !now.After(start.Add(window))
}

// CachedEvent is the denormalized projection stored in the live games cache.
type CachedEvent struct {
	ID        uuid.UUID `json:"id"`
	League    string    `json:"league"`
	Match     string    `json:"match"`
	Network   string    `json:"network"`
	App       string    `json:"app"`
	Link      string    `json:"link"`
	StartTime time.Time `json:"start_time"`
	IsLive    bool      `json:"is_live"`
	CreatedAt time.Time `json:"created_at"`
}

// ContentType classifies items in a provider library.
type ContentType string

const (
	ContentLive     ContentType = "live"
	ContentUpcoming ContentType = "upcoming"
	ContentReplay   ContentType = "replay"
)

// LibraryItem is an entry in a user's provider library.
type LibraryItem struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Type         ContentType `json:"type"`
	League       string      `json:"league,omitempty"`
	Teams        []string    `json:"teams,omitempty"`
	StartTime    time.Time   `json:"startTime"`
	EndTime      *time.Time  `json:"endTime,omitempty"`
	DeepLink     string      `json:"deepLink"`
	ThumbnailURL string      `json:"thumbnailUrl,omitempty"`
	Description  string      `json:"description,omitempty"`
	IsLive       bool        `json:"isLive"`
}
