package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/publication-cms-api/internal/apperr"
	"github.com/publication-cms-api/internal/mocks"
	"github.com/publication-cms-api/internal/models"
	"github.com/publication-cms-api/internal/repository"
)

// The in-memory mocks must satisfy the repository interfaces and mirror
// the ordering and cascade contracts of the Postgres implementations.
var (
	_ repository.ArticleRepository = (*mocks.MockArticleRepository)(nil)
	_ repository.BlockRepository   = (*mocks.MockBlockRepository)(nil)
	_ repository.UserRepository    = (*mocks.MockUserRepository)(nil)
	_ repository.AuthorRepository  = (*mocks.MockAuthorRepository)(nil)
	_ repository.SpotifyRepository = (*mocks.MockSpotifyRepository)(nil)
)

func TestMockBlockRepository_OrderingContract(t *testing.T) {
	blocks := mocks.NewMockBlockRepository()
	ctx := context.Background()

	// Same position twice: block id breaks the tie, ascending
	inserts := []models.ContentBlock{
		{ID: "block-c", ArticleID: "article-1", BlockType: "text", Content: []byte(`{}`), Position: 2},
		{ID: "block-b", ArticleID: "article-1", BlockType: "text", Content: []byte(`{}`), Position: 1},
		{ID: "block-d", ArticleID: "article-1", BlockType: "text", Content: []byte(`{}`), Position: 1},
		{ID: "block-a", ArticleID: "article-1", BlockType: "text", Content: []byte(`{}`), Position: 0},
	}
	for i := range inserts {
		if err := blocks.Append(ctx, &inserts[i]); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	listed, err := blocks.ListForArticle(ctx, "article-1")
	if err != nil {
		t.Fatalf("ListForArticle failed: %v", err)
	}

	wantOrder := []string{"block-a", "block-b", "block-d", "block-c"}
	if len(listed) != len(wantOrder) {
		t.Fatalf("Expected %d blocks, got %d", len(wantOrder), len(listed))
	}
	for i, want := range wantOrder {
		if listed[i].ID != want {
			t.Errorf("Position %d: expected %s, got %s", i, want, listed[i].ID)
		}
	}
}

func TestMockArticleRepository_DeleteCascades(t *testing.T) {
	blocks := mocks.NewMockBlockRepository()
	articles := mocks.NewMockArticleRepository(blocks)
	ctx := context.Background()

	article := &models.Article{ID: "article-1", Title: "A", Status: models.StatusDraft, CreatedAt: time.Now()}
	if err := articles.Create(ctx, article); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	blocks.Append(ctx, &models.ContentBlock{ID: "block-1", ArticleID: "article-1", BlockType: "text", Content: []byte(`{}`)})

	if err := articles.Delete(ctx, "article-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	remaining, _ := blocks.ListForArticle(ctx, "article-1")
	if len(remaining) != 0 {
		t.Errorf("Blocks must not outlive their article, got %d", len(remaining))
	}
}

func TestMockArticleRepository_SetStatusNotFound(t *testing.T) {
	articles := mocks.NewMockArticleRepository(nil)
	ctx := context.Background()

	err := articles.SetStatus(ctx, "missing", models.StatusPublished)
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestMockUserRepository_DuplicateEmail(t *testing.T) {
	users := mocks.NewMockUserRepository()
	ctx := context.Background()

	first := &models.User{ID: "user-1", Email: "dup@test.com", PasswordHash: "x", Role: "student"}
	if err := users.Create(ctx, first); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	second := &models.User{ID: "user-2", Email: "dup@test.com", PasswordHash: "y", Role: "student"}
	if err := users.Create(ctx, second); !errors.Is(err, apperr.ErrDuplicateEmail) {
		t.Fatalf("Expected ErrDuplicateEmail, got %v", err)
	}

	count, _ := users.Count(ctx)
	if count != 1 {
		t.Errorf("Expected 1 user, got %d", count)
	}
}

func TestMockAuthorRepository_WeakReference(t *testing.T) {
	authors := mocks.NewMockAuthorRepository()
	blocks := mocks.NewMockBlockRepository()
	articles := mocks.NewMockArticleRepository(blocks)
	ctx := context.Background()

	authors.Create(ctx, &models.Author{ID: "author-1", Name: "Sam"})
	authorID := "author-1"
	articles.Create(ctx, &models.Article{ID: "article-1", Title: "A", AuthorID: &authorID, Status: models.StatusDraft})

	if err := authors.Delete(ctx, "author-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	// The article survives its author
	article, err := articles.GetByID(ctx, "article-1")
	if err != nil {
		t.Fatalf("Article must outlive its author: %v", err)
	}
	if article.Title != "A" {
		t.Errorf("Unexpected article: %+v", article)
	}
}
