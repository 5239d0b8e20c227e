package models

import (
	"time"
)

// SpotifyLink is a podcast episode record. Same lifecycle pattern as
// Article but flat: no child blocks.
type SpotifyLink struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	URL         string    `json:"url" db:"url"`
	Description string    `json:"description" db:"description"`
	Duration    string    `json:"duration" db:"duration"`
	EpisodeDate time.Time `json:"episode_date" db:"episode_date"`
	VideoLink   *string   `json:"video_link,omitempty" db:"video_link"`
	CoverImage  *string   `json:"cover_image,omitempty" db:"cover_image"`
	Guests      []string  `json:"guests" db:"-"` // Stored as JSON string in DB
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
