package validation

import (
	"encoding/json"
	"testing"
)

func TestValidateCredentials(t *testing.T) {
	tests := []struct {
		name       string
		email      string
		password   string
		wantErrors int
		wantFields []string
	}{
		{
			name:       "valid credentials",
			email:      "test@example.com",
			password:   "longenough",
			wantErrors: 0,
		},
		{
			name:       "missing email",
			email:      "",
			password:   "longenough",
			wantErrors: 1,
			wantFields: []string{"email"},
		},
		{
			name:       "invalid email format",
			email:      "not-an-email",
			password:   "longenough",
			wantErrors: 1,
			wantFields: []string{"email"},
		},
		{
			name:       "missing password",
			email:      "test@example.com",
			password:   "",
			wantErrors: 1,
			wantFields: []string{"password"},
		},
		{
			name:       "short password",
			email:      "test@example.com",
			password:   "short",
			wantErrors: 1,
			wantFields: []string{"password"},
		},
		{
			name:       "both invalid",
			email:      "invalid",
			password:   "",
			wantErrors: 2,
			wantFields: []string{"email", "password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateCredentials(tt.email, tt.password)
			if len(errs) != tt.wantErrors {
				t.Fatalf("Expected %d errors, got %d: %v", tt.wantErrors, len(errs), errs)
			}
			for i, field := range tt.wantFields {
				if errs[i].Field != field {
					t.Errorf("Error %d: expected field %s, got %s", i, field, errs[i].Field)
				}
			}
		})
	}
}

func TestValidateArticle(t *testing.T) {
	tests := []struct {
		name       string
		title      string
		status     string
		wantErrors int
	}{
		{"valid draft", "A Title", "draft", 0},
		{"valid review", "A Title", "review", 0},
		{"valid published", "A Title", "published", 0},
		{"missing title", "", "draft", 1},
		{"whitespace title", "   ", "draft", 1},
		{"missing status", "A Title", "", 1},
		{"unknown status", "A Title", "archived", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateArticle(tt.title, tt.status)
			if len(errs) != tt.wantErrors {
				t.Errorf("Expected %d errors, got %d: %v", tt.wantErrors, len(errs), errs)
			}
		})
	}
}

func TestValidateBlock(t *testing.T) {
	tests := []struct {
		name       string
		blockType  string
		content    json.RawMessage
		position   int
		wantErrors int
	}{
		{"valid text block", "text", json.RawMessage(`{"body":"hi"}`), 0, 0},
		{"unknown type accepted", "interactive-map", json.RawMessage(`{"lat":1}`), 2, 0},
		{"missing type", "", json.RawMessage(`{}`), 0, 1},
		{"missing content", "text", nil, 0, 1},
		{"invalid json", "text", json.RawMessage(`{broken`), 0, 1},
		{"negative position", "text", json.RawMessage(`{}`), -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateBlock(tt.blockType, tt.content, tt.position)
			if len(errs) != tt.wantErrors {
				t.Errorf("Expected %d errors, got %d: %v", tt.wantErrors, len(errs), errs)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Reader@Example.COM", "reader@example.com"},
		{"  padded@example.com  ", "padded@example.com"},
		{"already@lower.com", "already@lower.com"},
	}

	for _, tt := range tests {
		if got := NormalizeEmail(tt.in); got != tt.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
