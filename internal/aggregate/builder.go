// Package aggregate reconstructs an article tree from the flattened rows
// of a LEFT JOIN between articles and content_blocks. It is pure: no
// database handle, so it can be tested with literal row fixtures.
package aggregate

import (
	"database/sql"
	"encoding/json"

	"github.com/publication-cms-api/internal/apperr"
	"github.com/publication-cms-api/internal/models"
)

// Row mirrors one row of the article/blocks join projection. An article
// with N blocks produces N rows; an article with no blocks produces
// exactly one sentinel row whose block columns are all NULL.
type Row struct {
	ArticleID  string
	Title      string
	AuthorID   sql.NullString
	Status     string
	CoverImage sql.NullString
	PDF        sql.NullString
	CreatedAt  sql.NullTime
	UpdatedAt  sql.NullTime

	BlockID   sql.NullString
	BlockType sql.NullString
	Content   sql.NullString
	Position  sql.NullInt64
}

// BuildArticle groups the join rows into a single article with its ordered
// blocks. Rules:
//
//   - empty input means the article does not exist: apperr.ErrNotFound
//   - article scalars come from the first row (identical on every row by
//     join construction)
//   - rows with a NULL block id are sentinel rows and are dropped, so a
//     childless article yields Blocks = [] rather than one null-filled entry
//   - row order is preserved verbatim; the repository's ORDER BY position
//     ASC, id ASC already fixed the sequence and ties, so no re-sort here
//
// A block whose stored payload fails to decode is skipped rather than
// failing the whole article; its id is returned in skipped so the caller
// can log it.
func BuildArticle(rows []Row) (article *models.Article, skipped []string, err error) {
	if len(rows) == 0 {
		return nil, nil, apperr.ErrNotFound
	}

	first := rows[0]
	article = &models.Article{
		ID:     first.ArticleID,
		Title:  first.Title,
		Status: models.Status(first.Status),
		Blocks: []models.ContentBlock{},
	}
	if first.AuthorID.Valid {
		article.AuthorID = &first.AuthorID.String
	}
	if first.CoverImage.Valid {
		article.CoverImage = &first.CoverImage.String
	}
	if first.PDF.Valid {
		article.PDF = &first.PDF.String
	}
	if first.CreatedAt.Valid {
		article.CreatedAt = first.CreatedAt.Time
	}
	if first.UpdatedAt.Valid {
		article.UpdatedAt = first.UpdatedAt.Time
	}

	for _, row := range rows {
		if !row.BlockID.Valid {
			continue // sentinel row for a childless article
		}

		var content json.RawMessage
		if err := json.Unmarshal([]byte(row.Content.String), &content); err != nil {
			skipped = append(skipped, row.BlockID.String)
			continue
		}

		article.Blocks = append(article.Blocks, models.ContentBlock{
			ID:        row.BlockID.String,
			ArticleID: first.ArticleID,
			BlockType: row.BlockType.String,
			Content:   content,
			Position:  int(row.Position.Int64),
		})
	}

	return article, skipped, nil
}
