package repository

import (
	"context"
	"fmt"

	"github.com/publication-cms-api/internal/apperr"
	"github.com/publication-cms-api/internal/database"
	"github.com/publication-cms-api/internal/models"
)

// blockRepo is the concrete implementation of BlockRepository
type blockRepo struct {
	db *database.DB
}

// NewBlockRepo creates a new content block repository
func NewBlockRepo(db *database.DB) BlockRepository {
	return &blockRepo{db: db}
}

// Append inserts a block for an existing article. The block type is not
// checked against the known set: unknown tags are stored verbatim so new
// renderers can ship without a schema change.
func (r *blockRepo) Append(ctx context.Context, block *models.ContentBlock) error {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM articles WHERE id = $1)", block.ArticleID).Scan(&exists)
	if err != nil {
		return apperr.Storage("block append", err)
	}
	if !exists {
		return fmt.Errorf("article %s: %w", block.ArticleID, apperr.ErrNotFound)
	}

	query := `
		INSERT INTO content_blocks (id, article_id, block_type, content, position)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = r.db.ExecContext(ctx, query,
		block.ID, block.ArticleID, block.BlockType, string(block.Content), block.Position,
	)
	return apperr.Storage("block append", err)
}

// ListForArticle returns an article's blocks sorted ascending by position,
// block id breaking ties
func (r *blockRepo) ListForArticle(ctx context.Context, articleID string) ([]models.ContentBlock, error) {
	query := `
		SELECT id, article_id, block_type, content::text, position
		FROM content_blocks
		WHERE article_id = $1
		ORDER BY position ASC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, apperr.Storage("block list", err)
	}
	defer rows.Close()

	blocks := []models.ContentBlock{}
	for rows.Next() {
		var b models.ContentBlock
		var content string
		if err := rows.Scan(&b.ID, &b.ArticleID, &b.BlockType, &content, &b.Position); err != nil {
			return nil, apperr.Storage("block list scan", err)
		}
		b.Content = []byte(content)
		blocks = append(blocks, b)
	}
	return blocks, apperr.Storage("block list rows", rows.Err())
}

// Count returns the total number of content blocks
func (r *blockRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM content_blocks").Scan(&count)
	return count, apperr.Storage("block count", err)
}
