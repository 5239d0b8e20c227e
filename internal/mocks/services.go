package mocks

import (
	"context"

	"github.com/publication-cms-api/internal/apperr"
	"github.com/publication-cms-api/internal/models"
	"github.com/publication-cms-api/internal/service"
)

// MockAuthService is a mock implementation of service.AuthService.
// Tokens are plain strings looked up in Principals; anything absent is
// rejected the way a bad signature would be.
type MockAuthService struct {
	Principals    map[string]*models.Principal
	RegisterFunc  func(ctx context.Context, email, password string) (string, error)
	VerifyFunc    func(ctx context.Context, email, password string) (*models.Principal, error)
	IssuedToken   string
	RegisterCalls int
}

func NewMockAuthService() *MockAuthService {
	return &MockAuthService{
		Principals:  make(map[string]*models.Principal),
		IssuedToken: "issued-token",
	}
}

func (m *MockAuthService) Register(ctx context.Context, email, password string) (string, error) {
	m.RegisterCalls++
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, email, password)
	}
	return "user-1", nil
}

func (m *MockAuthService) Verify(ctx context.Context, email, password string) (*models.Principal, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, email, password)
	}
	return nil, apperr.ErrInvalidCredentials
}

func (m *MockAuthService) IssueToken(principal *models.Principal) (string, error) {
	return m.IssuedToken, nil
}

func (m *MockAuthService) ParseToken(rawToken string) (*models.Principal, error) {
	principal, ok := m.Principals[rawToken]
	if !ok {
		return nil, apperr.ErrForbidden
	}
	return principal, nil
}

// MockArticleService is a mock implementation of service.ArticleService
// delegating to the in-memory repositories
type MockArticleService struct {
	Articles *MockArticleRepository
	Blocks   *MockBlockRepository
	Authors  *MockAuthorRepository
	NextID   string
}

func NewMockArticleService() *MockArticleService {
	blocks := NewMockBlockRepository()
	articles := NewMockArticleRepository(blocks)
	blocks.ArticleExists = func(id string) bool {
		_, ok := articles.Articles[id]
		return ok
	}
	return &MockArticleService{
		Articles: articles,
		Blocks:   blocks,
		Authors:  NewMockAuthorRepository(),
		NextID:   "article-1",
	}
}

func (m *MockArticleService) Create(ctx context.Context, req *service.CreateArticleRequest) (*models.Article, error) {
	article := &models.Article{
		ID:     m.NextID,
		Title:  req.Title,
		Status: models.Status(req.Status),
		Blocks: []models.ContentBlock{},
	}
	if err := m.Articles.Create(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

func (m *MockArticleService) Get(ctx context.Context, id string) (*models.Article, error) {
	return m.Articles.GetByID(ctx, id)
}

func (m *MockArticleService) ListPublished(ctx context.Context) ([]*models.Article, error) {
	return m.Articles.ListPublished(ctx)
}

func (m *MockArticleService) ListAll(ctx context.Context) ([]*models.ArticleSummary, error) {
	return m.Articles.ListAll(ctx)
}

func (m *MockArticleService) AppendBlock(ctx context.Context, req *service.AppendBlockRequest) (string, error) {
	block := &models.ContentBlock{
		ID:        "block-1",
		ArticleID: req.ArticleID,
		BlockType: req.BlockType,
		Content:   req.Content,
		Position:  req.Position,
	}
	if err := m.Blocks.Append(ctx, block); err != nil {
		return "", err
	}
	return block.ID, nil
}

func (m *MockArticleService) SetStatus(ctx context.Context, id string, status string) (models.Status, error) {
	parsed, err := models.ParseStatus(status)
	if err != nil {
		return "", apperr.ValidationErrors{{Field: "status", Message: err.Error()}}
	}
	if err := m.Articles.SetStatus(ctx, id, parsed); err != nil {
		return "", err
	}
	return parsed, nil
}

func (m *MockArticleService) Delete(ctx context.Context, id string) error {
	return m.Articles.Delete(ctx, id)
}

func (m *MockArticleService) ListAuthors(ctx context.Context) ([]*models.Author, error) {
	return m.Authors.List(ctx)
}

func (m *MockArticleService) CreateAuthor(ctx context.Context, name string) (*models.Author, error) {
	author := &models.Author{ID: "author-1", Name: name}
	if err := m.Authors.Create(ctx, author); err != nil {
		return nil, err
	}
	return author, nil
}

// MockSpotifyService is a mock implementation of service.SpotifyService
type MockSpotifyService struct {
	Repo *MockSpotifyRepository
}

func NewMockSpotifyService() *MockSpotifyService {
	return &MockSpotifyService{Repo: NewMockSpotifyRepository()}
}

func (m *MockSpotifyService) Create(ctx context.Context, req *service.CreateSpotifyLinkRequest) (*models.SpotifyLink, error) {
	link := &models.SpotifyLink{
		ID:          "spotify-1",
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
		Duration:    req.Duration,
		EpisodeDate: req.EpisodeDate,
		Guests:      req.Guests,
	}
	if err := m.Repo.Create(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

func (m *MockSpotifyService) Get(ctx context.Context, id string) (*models.SpotifyLink, error) {
	return m.Repo.GetByID(ctx, id)
}

func (m *MockSpotifyService) List(ctx context.Context) ([]*models.SpotifyLink, error) {
	return m.Repo.List(ctx)
}

func (m *MockSpotifyService) Delete(ctx context.Context, id string) error {
	return m.Repo.Delete(ctx, id)
}
