package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/publication-cms-api/internal/models"
	"github.com/publication-cms-api/internal/repository"
	"github.com/publication-cms-api/internal/validation"
	"github.com/rs/zerolog"
)

// spotifyService is the concrete implementation of SpotifyService
type spotifyService struct {
	repo repository.SpotifyRepository
	log  zerolog.Logger
}

// newSpotifyService creates a new SpotifyService
func newSpotifyService(repo repository.SpotifyRepository, log zerolog.Logger) SpotifyService {
	return &spotifyService{
		repo: repo,
		log:  log.With().Str("service", "spotify").Logger(),
	}
}

// Create inserts a new spotify link
func (s *spotifyService) Create(ctx context.Context, req *CreateSpotifyLinkRequest) (*models.SpotifyLink, error) {
	if errs := validation.ValidateSpotifyLink(req.Title, req.URL); len(errs) > 0 {
		return nil, errs
	}

	link := &models.SpotifyLink{
		ID:          uuid.NewString(),
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
		Duration:    req.Duration,
		EpisodeDate: req.EpisodeDate,
		VideoLink:   req.VideoLink,
		CoverImage:  req.CoverImage,
		Guests:      req.Guests,
		CreatedAt:   time.Now().UTC(),
	}
	if link.Guests == nil {
		link.Guests = []string{}
	}

	if err := s.repo.Create(ctx, link); err != nil {
		return nil, err
	}

	s.log.Info().Str("spotify_id", link.ID).Msg("Spotify link created")
	return link, nil
}

// Get retrieves a spotify link by ID
func (s *spotifyService) Get(ctx context.Context, id string) (*models.SpotifyLink, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all spotify links, newest episode first
func (s *spotifyService) List(ctx context.Context) ([]*models.SpotifyLink, error) {
	return s.repo.List(ctx)
}

// Delete removes a spotify link
func (s *spotifyService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("spotify_id", id).Msg("Spotify link deleted")
	return nil
}
