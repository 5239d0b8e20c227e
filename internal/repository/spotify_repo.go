package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/publication-cms-api/internal/apperr"
	"github.com/publication-cms-api/internal/database"
	"github.com/publication-cms-api/internal/models"
)

// spotifyRepo is the concrete implementation of SpotifyRepository
type spotifyRepo struct {
	db *database.DB
}

// NewSpotifyRepo creates a new spotify link repository
func NewSpotifyRepo(db *database.DB) SpotifyRepository {
	return &spotifyRepo{db: db}
}

// Create inserts a new spotify link
func (r *spotifyRepo) Create(ctx context.Context, link *models.SpotifyLink) error {
	guestsJSON, _ := json.Marshal(link.Guests)
	if link.Guests == nil {
		guestsJSON = []byte("[]")
	}

	query := `
		INSERT INTO spotify_links (id, title, url, description, duration, episode_date, video_link, cover_image, guests, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		link.ID, link.Title, link.URL, link.Description, link.Duration,
		link.EpisodeDate, link.VideoLink, link.CoverImage, string(guestsJSON), link.CreatedAt,
	)
	return apperr.Storage("spotify create", err)
}

// GetByID retrieves a spotify link by ID
func (r *spotifyRepo) GetByID(ctx context.Context, id string) (*models.SpotifyLink, error) {
	query := `
		SELECT id, title, url, description, duration, episode_date, video_link, cover_image, guests, created_at
		FROM spotify_links WHERE id = $1
	`
	link, err := scanSpotifyLink(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("spotify link %s: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, apperr.Storage("spotify get", err)
	}
	return link, nil
}

// List returns all spotify links, newest episode first
func (r *spotifyRepo) List(ctx context.Context) ([]*models.SpotifyLink, error) {
	query := `
		SELECT id, title, url, description, duration, episode_date, video_link, cover_image, guests, created_at
		FROM spotify_links ORDER BY episode_date DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, apperr.Storage("spotify list", err)
	}
	defer rows.Close()

	links := []*models.SpotifyLink{}
	for rows.Next() {
		link, err := scanSpotifyLink(rows)
		if err != nil {
			return nil, apperr.Storage("spotify list scan", err)
		}
		links = append(links, link)
	}
	return links, apperr.Storage("spotify list rows", rows.Err())
}

// Delete removes a spotify link
func (r *spotifyRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM spotify_links WHERE id = $1`, id)
	if err != nil {
		return apperr.Storage("spotify delete", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperr.Storage("spotify delete", err)
	}
	if affected == 0 {
		return fmt.Errorf("spotify link %s: %w", id, apperr.ErrNotFound)
	}
	return nil
}

// Count returns the total number of spotify links
func (r *spotifyRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM spotify_links").Scan(&count)
	return count, apperr.Storage("spotify count", err)
}

// scanner covers both sql.Row and sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSpotifyLink(s scanner) (*models.SpotifyLink, error) {
	var link models.SpotifyLink
	var videoLink, coverImage sql.NullString
	var guestsJSON []byte

	err := s.Scan(
		&link.ID, &link.Title, &link.URL, &link.Description, &link.Duration,
		&link.EpisodeDate, &videoLink, &coverImage, &guestsJSON, &link.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if videoLink.Valid {
		link.VideoLink = &videoLink.String
	}
	if coverImage.Valid {
		link.CoverImage = &coverImage.String
	}
	json.Unmarshal(guestsJSON, &link.Guests)

	return &link, nil
}
