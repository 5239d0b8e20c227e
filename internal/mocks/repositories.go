package mocks

import (
	"context"
	"fmt"
	"sort"

	"github.com/publication-cms-api/internal/apperr"
	"github.com/publication-cms-api/internal/models"
)

// MockArticleRepository is an in-memory implementation of
// repository.ArticleRepository. Blocks live in a shared MockBlockRepository
// so cascade semantics can be exercised.
type MockArticleRepository struct {
	Articles map[string]*models.Article
	Blocks   *MockBlockRepository
	Err      error
}

func NewMockArticleRepository(blocks *MockBlockRepository) *MockArticleRepository {
	return &MockArticleRepository{
		Articles: make(map[string]*models.Article),
		Blocks:   blocks,
	}
}

func (m *MockArticleRepository) Create(ctx context.Context, article *models.Article) error {
	if m.Err != nil {
		return m.Err
	}
	stored := *article
	m.Articles[article.ID] = &stored
	return nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id string) (*models.Article, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	stored, ok := m.Articles[id]
	if !ok {
		return nil, fmt.Errorf("article %s: %w", id, apperr.ErrNotFound)
	}
	article := *stored
	article.Blocks = []models.ContentBlock{}
	if m.Blocks != nil {
		blocks, _ := m.Blocks.ListForArticle(ctx, id)
		article.Blocks = blocks
	}
	return &article, nil
}

func (m *MockArticleRepository) ListPublished(ctx context.Context) ([]*models.Article, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	published := []*models.Article{}
	for _, a := range m.Articles {
		if a.Status == models.StatusPublished {
			copied := *a
			published = append(published, &copied)
		}
	}
	sort.Slice(published, func(i, j int) bool {
		return published[i].CreatedAt.After(published[j].CreatedAt)
	})
	return published, nil
}

func (m *MockArticleRepository) ListAll(ctx context.Context) ([]*models.ArticleSummary, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	summaries := []*models.ArticleSummary{}
	for _, a := range m.Articles {
		summaries = append(summaries, &models.ArticleSummary{
			ID:        a.ID,
			Title:     a.Title,
			Status:    a.Status,
			CreatedAt: a.CreatedAt,
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})
	return summaries, nil
}

func (m *MockArticleRepository) SetStatus(ctx context.Context, id string, status models.Status) error {
	if m.Err != nil {
		return m.Err
	}
	article, ok := m.Articles[id]
	if !ok {
		return fmt.Errorf("article %s: %w", id, apperr.ErrNotFound)
	}
	article.Status = status
	return nil
}

func (m *MockArticleRepository) Delete(ctx context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.Articles[id]; !ok {
		return fmt.Errorf("article %s: %w", id, apperr.ErrNotFound)
	}
	delete(m.Articles, id)
	if m.Blocks != nil {
		m.Blocks.DeleteForArticle(id)
	}
	return nil
}

func (m *MockArticleRepository) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := m.Articles[id]
	return ok, nil
}

func (m *MockArticleRepository) Count(ctx context.Context) (int, error) {
	return len(m.Articles), nil
}

// MockBlockRepository is an in-memory implementation of
// repository.BlockRepository
type MockBlockRepository struct {
	BlocksByArticle map[string][]models.ContentBlock
	ArticleExists   func(articleID string) bool
	Err             error
}

func NewMockBlockRepository() *MockBlockRepository {
	return &MockBlockRepository{
		BlocksByArticle: make(map[string][]models.ContentBlock),
	}
}

func (m *MockBlockRepository) Append(ctx context.Context, block *models.ContentBlock) error {
	if m.Err != nil {
		return m.Err
	}
	if m.ArticleExists != nil && !m.ArticleExists(block.ArticleID) {
		return fmt.Errorf("article %s: %w", block.ArticleID, apperr.ErrNotFound)
	}
	m.BlocksByArticle[block.ArticleID] = append(m.BlocksByArticle[block.ArticleID], *block)
	return nil
}

func (m *MockBlockRepository) ListForArticle(ctx context.Context, articleID string) ([]models.ContentBlock, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	blocks := append([]models.ContentBlock{}, m.BlocksByArticle[articleID]...)
	// Same ordering contract as the real store: position ascending,
	// block id breaking ties.
	sort.SliceStable(blocks, func(i, j int) bool {
		if blocks[i].Position != blocks[j].Position {
			return blocks[i].Position < blocks[j].Position
		}
		return blocks[i].ID < blocks[j].ID
	})
	return blocks, nil
}

func (m *MockBlockRepository) DeleteForArticle(articleID string) {
	delete(m.BlocksByArticle, articleID)
}

func (m *MockBlockRepository) Count(ctx context.Context) (int, error) {
	total := 0
	for _, blocks := range m.BlocksByArticle {
		total += len(blocks)
	}
	return total, nil
}

// MockUserRepository is an in-memory implementation of
// repository.UserRepository
type MockUserRepository struct {
	UsersByEmail map[string]*models.User
	Err          error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		UsersByEmail: make(map[string]*models.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.Err != nil {
		return m.Err
	}
	if _, exists := m.UsersByEmail[user.Email]; exists {
		return fmt.Errorf("user %s: %w", user.Email, apperr.ErrDuplicateEmail)
	}
	stored := *user
	m.UsersByEmail[user.Email] = &stored
	return nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	user, ok := m.UsersByEmail[email]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", email, apperr.ErrNotFound)
	}
	copied := *user
	return &copied, nil
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	_, ok := m.UsersByEmail[email]
	return ok, nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	return len(m.UsersByEmail), nil
}

// MockAuthorRepository is an in-memory implementation of
// repository.AuthorRepository
type MockAuthorRepository struct {
	Authors map[string]*models.Author
}

func NewMockAuthorRepository() *MockAuthorRepository {
	return &MockAuthorRepository{Authors: make(map[string]*models.Author)}
}

func (m *MockAuthorRepository) Create(ctx context.Context, author *models.Author) error {
	stored := *author
	m.Authors[author.ID] = &stored
	return nil
}

func (m *MockAuthorRepository) GetByID(ctx context.Context, id string) (*models.Author, error) {
	author, ok := m.Authors[id]
	if !ok {
		return nil, fmt.Errorf("author %s: %w", id, apperr.ErrNotFound)
	}
	return author, nil
}

func (m *MockAuthorRepository) List(ctx context.Context) ([]*models.Author, error) {
	authors := []*models.Author{}
	for _, a := range m.Authors {
		authors = append(authors, a)
	}
	sort.Slice(authors, func(i, j int) bool { return authors[i].Name < authors[j].Name })
	return authors, nil
}

func (m *MockAuthorRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.Authors[id]; !ok {
		return fmt.Errorf("author %s: %w", id, apperr.ErrNotFound)
	}
	delete(m.Authors, id)
	return nil
}

// MockSpotifyRepository is an in-memory implementation of
// repository.SpotifyRepository
type MockSpotifyRepository struct {
	Links map[string]*models.SpotifyLink
	Err   error
}

func NewMockSpotifyRepository() *MockSpotifyRepository {
	return &MockSpotifyRepository{Links: make(map[string]*models.SpotifyLink)}
}

func (m *MockSpotifyRepository) Create(ctx context.Context, link *models.SpotifyLink) error {
	if m.Err != nil {
		return m.Err
	}
	stored := *link
	m.Links[link.ID] = &stored
	return nil
}

func (m *MockSpotifyRepository) GetByID(ctx context.Context, id string) (*models.SpotifyLink, error) {
	link, ok := m.Links[id]
	if !ok {
		return nil, fmt.Errorf("spotify link %s: %w", id, apperr.ErrNotFound)
	}
	copied := *link
	return &copied, nil
}

func (m *MockSpotifyRepository) List(ctx context.Context) ([]*models.SpotifyLink, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	links := []*models.SpotifyLink{}
	for _, l := range m.Links {
		copied := *l
		links = append(links, &copied)
	}
	sort.Slice(links, func(i, j int) bool {
		return links[i].EpisodeDate.After(links[j].EpisodeDate)
	})
	return links, nil
}

func (m *MockSpotifyRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.Links[id]; !ok {
		return fmt.Errorf("spotify link %s: %w", id, apperr.ErrNotFound)
	}
	delete(m.Links, id)
	return nil
}

func (m *MockSpotifyRepository) Count(ctx context.Context) (int, error) {
	return len(m.Links), nil
}
