package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/publication-cms-api/internal/apperr"
	"github.com/publication-cms-api/internal/models"
	"github.com/publication-cms-api/internal/repository"
	"github.com/publication-cms-api/internal/validation"
	"github.com/rs/zerolog"
)

// articleService is the concrete implementation of ArticleService
type articleService struct {
	articleRepo repository.ArticleRepository
	blockRepo   repository.BlockRepository
	authorRepo  repository.AuthorRepository
	log         zerolog.Logger
}

// newArticleService creates a new ArticleService
func newArticleService(articleRepo repository.ArticleRepository, blockRepo repository.BlockRepository, authorRepo repository.AuthorRepository, log zerolog.Logger) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		blockRepo:   blockRepo,
		authorRepo:  authorRepo,
		log:         log.With().Str("service", "article").Logger(),
	}
}

// Create inserts a new article and echoes the inputs back; it does not
// re-read from storage
func (s *articleService) Create(ctx context.Context, req *CreateArticleRequest) (*models.Article, error) {
	if errs := validation.ValidateArticle(req.Title, req.Status); len(errs) > 0 {
		return nil, errs
	}
	status, _ := models.ParseStatus(req.Status)

	createdAt := time.Now().UTC()
	if req.Date != nil {
		createdAt = *req.Date
	}

	article := &models.Article{
		ID:         uuid.NewString(),
		Title:      req.Title,
		AuthorID:   req.AuthorID,
		Status:     status,
		CoverImage: req.CoverImage,
		PDF:        req.PDF,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
		Blocks:     []models.ContentBlock{},
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, err
	}

	s.log.Info().Str("article_id", article.ID).Str("status", string(status)).Msg("Article created")
	return article, nil
}

// Get retrieves one article with its ordered blocks
func (s *articleService) Get(ctx context.Context, id string) (*models.Article, error) {
	return s.articleRepo.GetByID(ctx, id)
}

// ListPublished returns the public read surface: published articles only,
// newest first
func (s *articleService) ListPublished(ctx context.Context) ([]*models.Article, error) {
	return s.articleRepo.ListPublished(ctx)
}

// ListAll returns the editorial listing across every status
func (s *articleService) ListAll(ctx context.Context) ([]*models.ArticleSummary, error) {
	return s.articleRepo.ListAll(ctx)
}

// AppendBlock adds a content block to an existing article and returns the
// new block's id. No id is returned on any failure.
func (s *articleService) AppendBlock(ctx context.Context, req *AppendBlockRequest) (string, error) {
	if errs := validation.ValidateBlock(req.BlockType, req.Content, req.Position); len(errs) > 0 {
		return "", errs
	}

	block := &models.ContentBlock{
		ID:        uuid.NewString(),
		ArticleID: req.ArticleID,
		BlockType: req.BlockType,
		Content:   req.Content,
		Position:  req.Position,
	}

	if err := s.blockRepo.Append(ctx, block); err != nil {
		return "", err
	}

	if !models.KnownBlockType(req.BlockType) {
		s.log.Debug().
			Str("article_id", req.ArticleID).
			Str("block_type", req.BlockType).
			Msg("Stored block with unrecognized type tag")
	}

	return block.ID, nil
}

// SetStatus moves an article through the publishing state machine. The
// current transition table allows every pair; a disallowed pair would
// surface as a validation failure without touching storage.
func (s *articleService) SetStatus(ctx context.Context, id string, rawStatus string) (models.Status, error) {
	status, err := models.ParseStatus(rawStatus)
	if err != nil {
		return "", apperr.ValidationErrors{{Field: "status", Message: "status must be one of: draft, review, published"}}
	}

	current, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	if !models.CanTransition(current.Status, status) {
		return "", apperr.ValidationErrors{{
			Field:   "status",
			Message: fmt.Sprintf("transition %s -> %s is not allowed", current.Status, status),
		}}
	}

	if err := s.articleRepo.SetStatus(ctx, id, status); err != nil {
		return "", err
	}

	s.log.Info().
		Str("article_id", id).
		Str("from", string(current.Status)).
		Str("to", string(status)).
		Msg("Article status changed")
	return status, nil
}

// Delete removes an article and all of its blocks
func (s *articleService) Delete(ctx context.Context, id string) error {
	if err := s.articleRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("article_id", id).Msg("Article deleted")
	return nil
}

// ListAuthors returns all byline authors
func (s *articleService) ListAuthors(ctx context.Context) ([]*models.Author, error) {
	return s.authorRepo.List(ctx)
}

// CreateAuthor adds a byline author
func (s *articleService) CreateAuthor(ctx context.Context, name string) (*models.Author, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperr.ValidationErrors{{Field: "name", Message: "name is required"}}
	}

	author := &models.Author{ID: uuid.NewString(), Name: name}
	if err := s.authorRepo.Create(ctx, author); err != nil {
		return nil, err
	}
	return author, nil
}
