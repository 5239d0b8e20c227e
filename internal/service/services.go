package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/publication-cms-api/internal/config"
	"github.com/publication-cms-api/internal/models"
	"github.com/publication-cms-api/internal/repository"
	"github.com/rs/zerolog"
)

// AuthService defines the interface for credential and token operations
type AuthService interface {
	Register(ctx context.Context, email, password string) (string, error)
	Verify(ctx context.Context, email, password string) (*models.Principal, error)
	IssueToken(principal *models.Principal) (string, error)
	ParseToken(rawToken string) (*models.Principal, error)
}

// ArticleService defines the interface for article operations
type ArticleService interface {
	Create(ctx context.Context, req *CreateArticleRequest) (*models.Article, error)
	Get(ctx context.Context, id string) (*models.Article, error)
	ListPublished(ctx context.Context) ([]*models.Article, error)
	ListAll(ctx context.Context) ([]*models.ArticleSummary, error)
	AppendBlock(ctx context.Context, req *AppendBlockRequest) (string, error)
	SetStatus(ctx context.Context, id string, status string) (models.Status, error)
	Delete(ctx context.Context, id string) error
	ListAuthors(ctx context.Context) ([]*models.Author, error)
	CreateAuthor(ctx context.Context, name string) (*models.Author, error)
}

// SpotifyService defines the interface for spotify link operations
type SpotifyService interface {
	Create(ctx context.Context, req *CreateSpotifyLinkRequest) (*models.SpotifyLink, error)
	Get(ctx context.Context, id string) (*models.SpotifyLink, error)
	List(ctx context.Context) ([]*models.SpotifyLink, error)
	Delete(ctx context.Context, id string) error
}

// CreateArticleRequest carries article creation input. Cover and PDF are
// opaque blob references produced by the upload collaborator.
type CreateArticleRequest struct {
	Title      string     `json:"title"`
	AuthorID   *string    `json:"author"`
	Date       *time.Time `json:"date"`
	Status     string     `json:"status"`
	CoverImage *string    `json:"coverImage"`
	PDF        *string    `json:"pdf"`
}

// AppendBlockRequest carries block append input
type AppendBlockRequest struct {
	ArticleID string          `json:"article_id"`
	BlockType string          `json:"block_type"`
	Content   json.RawMessage `json:"content"`
	Position  int             `json:"position"`
}

// CreateSpotifyLinkRequest carries spotify link creation input
type CreateSpotifyLinkRequest struct {
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	Duration    string    `json:"duration"`
	EpisodeDate time.Time `json:"episode_date"`
	VideoLink   *string   `json:"video_link"`
	CoverImage  *string   `json:"cover_image"`
	Guests      []string  `json:"guests"`
}

// Services holds all service interfaces
type Services struct {
	Auth    AuthService
	Article ArticleService
	Spotify SpotifyService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Auth:    newAuthService(repos.User, &cfg.Auth, log),
		Article: newArticleService(repos.Article, repos.Block, repos.Author, log),
		Spotify: newSpotifyService(repos.Spotify, log),
	}
}
