package repository

import (
	"context"

	"github.com/publication-cms-api/internal/database"
	"github.com/publication-cms-api/internal/models"
)

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id string) (*models.Article, error)
	ListPublished(ctx context.Context) ([]*models.Article, error)
	ListAll(ctx context.Context) ([]*models.ArticleSummary, error)
	SetStatus(ctx context.Context, id string, status models.Status) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// BlockRepository defines the interface for content block operations
type BlockRepository interface {
	Append(ctx context.Context, block *models.ContentBlock) error
	ListForArticle(ctx context.Context, articleID string) ([]models.ContentBlock, error)
	Count(ctx context.Context) (int, error)
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// AuthorRepository defines the interface for author data operations
type AuthorRepository interface {
	Create(ctx context.Context, author *models.Author) error
	GetByID(ctx context.Context, id string) (*models.Author, error)
	List(ctx context.Context) ([]*models.Author, error)
	Delete(ctx context.Context, id string) error
}

// SpotifyRepository defines the interface for spotify link operations
type SpotifyRepository interface {
	Create(ctx context.Context, link *models.SpotifyLink) error
	GetByID(ctx context.Context, id string) (*models.SpotifyLink, error)
	List(ctx context.Context) ([]*models.SpotifyLink, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Article ArticleRepository
	Block   BlockRepository
	User    UserRepository
	Author  AuthorRepository
	Spotify SpotifyRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Article: NewArticleRepo(db),
		Block:   NewBlockRepo(db),
		User:    NewUserRepo(db),
		Author:  NewAuthorRepo(db),
		Spotify: NewSpotifyRepo(db),
	}
}
