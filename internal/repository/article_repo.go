package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/publication-cms-api/internal/aggregate"
	"github.com/publication-cms-api/internal/apperr"
	"github.com/publication-cms-api/internal/database"
	"github.com/publication-cms-api/internal/models"
)

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

// Create inserts a new article
func (r *articleRepo) Create(ctx context.Context, article *models.Article) error {
	query := `
		INSERT INTO articles (id, title, author_id, status, cover_image, pdf, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		article.ID, article.Title, article.AuthorID, article.Status,
		article.CoverImage, article.PDF, article.CreatedAt, article.UpdatedAt,
	)
	return apperr.Storage("article create", err)
}

// GetByID retrieves an article with its ordered blocks. The LEFT JOIN
// produces one sentinel row for a childless article; the aggregate
// builder drops it. Position ties are broken by block id ascending.
func (r *articleRepo) GetByID(ctx context.Context, id string) (*models.Article, error) {
	query := `
		SELECT a.id, a.title, a.author_id, a.status, a.cover_image, a.pdf,
		       a.created_at, a.updated_at,
		       b.id, b.block_type, b.content::text, b.position
		FROM articles a
		LEFT JOIN content_blocks b ON b.article_id = a.id
		WHERE a.id = $1
		ORDER BY b.position ASC, b.id ASC
	`
	sqlRows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, apperr.Storage("article get", err)
	}
	defer sqlRows.Close()

	var rows []aggregate.Row
	for sqlRows.Next() {
		var row aggregate.Row
		if err := sqlRows.Scan(
			&row.ArticleID, &row.Title, &row.AuthorID, &row.Status,
			&row.CoverImage, &row.PDF, &row.CreatedAt, &row.UpdatedAt,
			&row.BlockID, &row.BlockType, &row.Content, &row.Position,
		); err != nil {
			return nil, apperr.Storage("article scan", err)
		}
		rows = append(rows, row)
	}
	if err := sqlRows.Err(); err != nil {
		return nil, apperr.Storage("article rows", err)
	}

	article, skipped, err := aggregate.BuildArticle(rows)
	if err != nil {
		return nil, err
	}
	for _, blockID := range skipped {
		r.db.Log().Warn().
			Str("article_id", id).
			Str("block_id", blockID).
			Msg("Skipping block with undecodable payload")
	}
	return article, nil
}

// ListPublished returns published articles newest first, joined with the
// author display name for presentation
func (r *articleRepo) ListPublished(ctx context.Context) ([]*models.Article, error) {
	query := `
		SELECT a.id, a.title, a.author_id, COALESCE(au.name, ''), a.status,
		       a.cover_image, a.pdf, a.created_at, a.updated_at
		FROM articles a
		LEFT JOIN authors au ON au.id = a.author_id
		WHERE a.status = $1
		ORDER BY a.created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, models.StatusPublished)
	if err != nil {
		return nil, apperr.Storage("article list published", err)
	}
	defer rows.Close()

	articles := []*models.Article{}
	for rows.Next() {
		var a models.Article
		var authorID, coverImage, pdf sql.NullString
		if err := rows.Scan(
			&a.ID, &a.Title, &authorID, &a.AuthorName, &a.Status,
			&coverImage, &pdf, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, apperr.Storage("article list scan", err)
		}
		if authorID.Valid {
			a.AuthorID = &authorID.String
		}
		if coverImage.Valid {
			a.CoverImage = &coverImage.String
		}
		if pdf.Valid {
			a.PDF = &pdf.String
		}
		articles = append(articles, &a)
	}
	return articles, apperr.Storage("article list rows", rows.Err())
}

// ListAll returns the editorial listing across every status, newest first
func (r *articleRepo) ListAll(ctx context.Context) ([]*models.ArticleSummary, error) {
	query := `
		SELECT id, title, status, created_at
		FROM articles
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, apperr.Storage("article list all", err)
	}
	defer rows.Close()

	summaries := []*models.ArticleSummary{}
	for rows.Next() {
		var s models.ArticleSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.Status, &s.CreatedAt); err != nil {
			return nil, apperr.Storage("article list all scan", err)
		}
		summaries = append(summaries, &s)
	}
	return summaries, apperr.Storage("article list all rows", rows.Err())
}

// SetStatus updates the publishing status. Setting the current status
// again is a successful no-op; an unknown id is ErrNotFound.
func (r *articleRepo) SetStatus(ctx context.Context, id string, status models.Status) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE articles SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now().UTC(), id,
	)
	if err != nil {
		return apperr.Storage("article set status", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperr.Storage("article set status", err)
	}
	if affected == 0 {
		return fmt.Errorf("article %s: %w", id, apperr.ErrNotFound)
	}
	return nil
}

// Delete removes an article and its blocks in one transaction. The
// schema's ON DELETE CASCADE is a backstop; the explicit delete keeps
// the cleanup policy visible and testable.
func (r *articleRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return apperr.Storage("article delete", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM content_blocks WHERE article_id = $1`, id); err != nil {
		return apperr.Storage("article delete blocks", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return apperr.Storage("article delete", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperr.Storage("article delete", err)
	}
	if affected == 0 {
		return fmt.Errorf("article %s: %w", id, apperr.ErrNotFound)
	}

	return apperr.Storage("article delete commit", tx.Commit())
}

// Exists checks if an article with the given ID exists
func (r *articleRepo) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM articles WHERE id = $1)", id).Scan(&exists)
	return exists, apperr.Storage("article exists", err)
}

// Count returns the total number of articles
func (r *articleRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles").Scan(&count)
	return count, apperr.Storage("article count", err)
}
