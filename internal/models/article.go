package models

import (
	"encoding/json"
	"time"
)

// Article represents one article together with its ordered content blocks
type Article struct {
	ID         string         `json:"id" db:"id"`
	Title      string         `json:"title" db:"title"`
	AuthorID   *string        `json:"author_id" db:"author_id"`
	AuthorName string         `json:"author_name,omitempty" db:"author_name"`
	Status     Status         `json:"status" db:"status"`
	CoverImage *string        `json:"cover_image,omitempty" db:"cover_image"`
	PDF        *string        `json:"pdf,omitempty" db:"pdf"`
	CreatedAt  time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at" db:"updated_at"`
	Blocks     []ContentBlock `json:"blocks"`
}

// ContentBlock is one unit of article content: a type tag, a structured
// payload opaque to the core, and a render position.
type ContentBlock struct {
	ID        string          `json:"id" db:"id"`
	ArticleID string          `json:"article_id" db:"article_id"`
	BlockType string          `json:"block_type" db:"block_type"`
	Content   json.RawMessage `json:"content" db:"content"`
	Position  int             `json:"position" db:"position"`
}

// Known block types. The set is open: storage accepts any tag so that
// new renderers can ship without a schema change, and readers fall back
// to opaque handling for tags they don't recognize.
const (
	BlockTypeText  = "text"
	BlockTypeImage = "image"
	BlockTypeEmbed = "embed"
)

// KnownBlockType reports whether a renderer exists for the tag
func KnownBlockType(t string) bool {
	switch t {
	case BlockTypeText, BlockTypeImage, BlockTypeEmbed:
		return true
	}
	return false
}

// ArticleSummary is the editorial listing row: every status, no blocks
type ArticleSummary struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Status    Status    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
