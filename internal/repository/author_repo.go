package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/publication-cms-api/internal/apperr"
	"github.com/publication-cms-api/internal/database"
	"github.com/publication-cms-api/internal/models"
)

// authorRepo is the concrete implementation of AuthorRepository
type authorRepo struct {
	db *database.DB
}

// NewAuthorRepo creates a new author repository
func NewAuthorRepo(db *database.DB) AuthorRepository {
	return &authorRepo{db: db}
}

// Create inserts a new author
func (r *authorRepo) Create(ctx context.Context, author *models.Author) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO authors (id, name) VALUES ($1, $2)`,
		author.ID, author.Name,
	)
	return apperr.Storage("author create", err)
}

// GetByID retrieves an author by ID
func (r *authorRepo) GetByID(ctx context.Context, id string) (*models.Author, error) {
	var author models.Author
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name FROM authors WHERE id = $1`, id,
	).Scan(&author.ID, &author.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("author %s: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, apperr.Storage("author get", err)
	}
	return &author, nil
}

// List returns all authors ordered by name
func (r *authorRepo) List(ctx context.Context) ([]*models.Author, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM authors ORDER BY name ASC`)
	if err != nil {
		return nil, apperr.Storage("author list", err)
	}
	defer rows.Close()

	authors := []*models.Author{}
	for rows.Next() {
		var a models.Author
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, apperr.Storage("author list scan", err)
		}
		authors = append(authors, &a)
	}
	return authors, apperr.Storage("author list rows", rows.Err())
}

// Delete removes an author. Articles keep their rows: the FK is declared
// ON DELETE SET NULL, so article.author_id is nulled rather than cascading.
func (r *authorRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return apperr.Storage("author delete", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperr.Storage("author delete", err)
	}
	if affected == 0 {
		return fmt.Errorf("author %s: %w", id, apperr.ErrNotFound)
	}
	return nil
}
