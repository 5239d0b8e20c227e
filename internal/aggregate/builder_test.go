package aggregate

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/publication-cms-api/internal/apperr"
)

func ns(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

func ni(i int64) sql.NullInt64 {
	return sql.NullInt64{Int64: i, Valid: true}
}

func nt(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: true}
}

func articleRow(blockID, blockType, content string, position int64) Row {
	row := Row{
		ArticleID: "article-1",
		Title:     "A Title",
		AuthorID:  ns("author-1"),
		Status:    "draft",
		CreatedAt: nt(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)),
		UpdatedAt: nt(time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC)),
	}
	if blockID != "" {
		row.BlockID = ns(blockID)
		row.BlockType = ns(blockType)
		row.Content = ns(content)
		row.Position = ni(position)
	}
	return row
}

func TestBuildArticle_EmptyRowsIsNotFound(t *testing.T) {
	_, _, err := BuildArticle(nil)
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestBuildArticle_SentinelRowYieldsEmptyBlocks(t *testing.T) {
	// A childless article arrives as exactly one row with NULL block columns
	article, skipped, err := BuildArticle([]Row{articleRow("", "", "", 0)})
	if err != nil {
		t.Fatalf("BuildArticle failed: %v", err)
	}
	if article.Blocks == nil {
		t.Fatal("Blocks must be an empty slice, not nil")
	}
	if len(article.Blocks) != 0 {
		t.Errorf("Expected 0 blocks, got %d", len(article.Blocks))
	}
	if len(skipped) != 0 {
		t.Errorf("Expected no skipped blocks, got %v", skipped)
	}
	if article.ID != "article-1" || article.Title != "A Title" {
		t.Errorf("Article scalars not taken from the row: %+v", article)
	}
	if article.AuthorID == nil || *article.AuthorID != "author-1" {
		t.Errorf("Expected author-1, got %v", article.AuthorID)
	}
}

func TestBuildArticle_ScalarsFromFirstRow(t *testing.T) {
	rows := []Row{
		articleRow("block-1", "text", `{"body":"hi"}`, 0),
		articleRow("block-2", "image", `{"url":"x.png"}`, 1),
	}
	rows[0].CoverImage = ns("covers/a.jpg")
	rows[1].CoverImage = ns("covers/a.jpg")

	article, _, err := BuildArticle(rows)
	if err != nil {
		t.Fatalf("BuildArticle failed: %v", err)
	}
	if article.Status != "draft" {
		t.Errorf("Expected status draft, got %s", article.Status)
	}
	if article.CoverImage == nil || *article.CoverImage != "covers/a.jpg" {
		t.Errorf("Expected cover image, got %v", article.CoverImage)
	}
	if !article.CreatedAt.Equal(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("Unexpected created_at: %v", article.CreatedAt)
	}
}

func TestBuildArticle_PreservesRowOrder(t *testing.T) {
	// Upstream query sorts position ASC with block id as tie-break; the
	// builder must keep that order untouched.
	rows := []Row{
		articleRow("block-a", "text", `{"body":"first"}`, 1),
		articleRow("block-b", "text", `{"body":"second"}`, 2),
		articleRow("block-c", "text", `{"body":"third"}`, 3),
	}

	article, _, err := BuildArticle(rows)
	if err != nil {
		t.Fatalf("BuildArticle failed: %v", err)
	}
	if len(article.Blocks) != 3 {
		t.Fatalf("Expected 3 blocks, got %d", len(article.Blocks))
	}
	for i, wantID := range []string{"block-a", "block-b", "block-c"} {
		if article.Blocks[i].ID != wantID {
			t.Errorf("Block %d: expected %s, got %s", i, wantID, article.Blocks[i].ID)
		}
		if article.Blocks[i].Position != i+1 {
			t.Errorf("Block %d: expected position %d, got %d", i, i+1, article.Blocks[i].Position)
		}
	}
}

func TestBuildArticle_MalformedPayloadIsSkipped(t *testing.T) {
	rows := []Row{
		articleRow("block-1", "text", `{"body":"ok"}`, 0),
		articleRow("block-2", "text", `{not json`, 1),
		articleRow("block-3", "embed", `{"url":"https://example.com"}`, 2),
	}

	article, skipped, err := BuildArticle(rows)
	if err != nil {
		t.Fatalf("A malformed block must not fail the article: %v", err)
	}
	if len(article.Blocks) != 2 {
		t.Fatalf("Expected 2 surviving blocks, got %d", len(article.Blocks))
	}
	if article.Blocks[0].ID != "block-1" || article.Blocks[1].ID != "block-3" {
		t.Errorf("Wrong surviving blocks: %s, %s", article.Blocks[0].ID, article.Blocks[1].ID)
	}
	if len(skipped) != 1 || skipped[0] != "block-2" {
		t.Errorf("Expected skipped [block-2], got %v", skipped)
	}
}

func TestBuildArticle_UnknownBlockTypeAccepted(t *testing.T) {
	rows := []Row{
		articleRow("block-1", "interactive-map", `{"lat":1,"lng":2}`, 0),
	}

	article, _, err := BuildArticle(rows)
	if err != nil {
		t.Fatalf("BuildArticle failed: %v", err)
	}
	if len(article.Blocks) != 1 {
		t.Fatalf("Expected 1 block, got %d", len(article.Blocks))
	}
	if article.Blocks[0].BlockType != "interactive-map" {
		t.Errorf("Unknown type tag must be stored verbatim, got %s", article.Blocks[0].BlockType)
	}
}

func TestBuildArticle_NestedPayloadDecodedStructurally(t *testing.T) {
	rows := []Row{
		articleRow("block-1", "embed", `{"provider":{"name":"yt","opts":[1,2,{"k":"v"}]}}`, 0),
	}

	article, _, err := BuildArticle(rows)
	if err != nil {
		t.Fatalf("BuildArticle failed: %v", err)
	}
	got := string(article.Blocks[0].Content)
	if got != `{"provider":{"name":"yt","opts":[1,2,{"k":"v"}]}}` {
		t.Errorf("Payload not preserved structurally: %s", got)
	}
}
