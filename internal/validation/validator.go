package validation

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/publication-cms-api/internal/apperr"
	"github.com/publication-cms-api/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// MinPasswordLength is the minimum accepted password length
const MinPasswordLength = 8

// ValidateCredentials checks a registration or login request
func ValidateCredentials(email, password string) apperr.ValidationErrors {
	var errs apperr.ValidationErrors

	email = strings.TrimSpace(email)
	if email == "" {
		errs = append(errs, apperr.ValidationError{Field: "email", Message: "email is required"})
	} else if !emailRegex.MatchString(email) {
		errs = append(errs, apperr.ValidationError{Field: "email", Message: "invalid email format"})
	}

	if password == "" {
		errs = append(errs, apperr.ValidationError{Field: "password", Message: "password is required"})
	} else if len(password) < MinPasswordLength {
		errs = append(errs, apperr.ValidationError{Field: "password", Message: "password must be at least 8 characters"})
	}

	return errs
}

// ValidateArticle checks an article creation request
func ValidateArticle(title, status string) apperr.ValidationErrors {
	var errs apperr.ValidationErrors

	if strings.TrimSpace(title) == "" {
		errs = append(errs, apperr.ValidationError{Field: "title", Message: "title is required"})
	}

	if status == "" {
		errs = append(errs, apperr.ValidationError{Field: "status", Message: "status is required"})
	} else if _, err := models.ParseStatus(status); err != nil {
		errs = append(errs, apperr.ValidationError{Field: "status", Message: "status must be one of: draft, review, published"})
	}

	return errs
}

// ValidateBlock checks a block append request. The block type set is open:
// only presence is required, never membership in a catalog.
func ValidateBlock(blockType string, content json.RawMessage, position int) apperr.ValidationErrors {
	var errs apperr.ValidationErrors

	if strings.TrimSpace(blockType) == "" {
		errs = append(errs, apperr.ValidationError{Field: "block_type", Message: "block_type is required"})
	}

	if len(content) == 0 {
		errs = append(errs, apperr.ValidationError{Field: "content", Message: "content is required"})
	} else if !json.Valid(content) {
		errs = append(errs, apperr.ValidationError{Field: "content", Message: "content must be valid JSON"})
	}

	if position < 0 {
		errs = append(errs, apperr.ValidationError{Field: "position", Message: "position must be non-negative"})
	}

	return errs
}

// ValidateSpotifyLink checks a spotify link creation request
func ValidateSpotifyLink(title, url string) apperr.ValidationErrors {
	var errs apperr.ValidationErrors

	if strings.TrimSpace(title) == "" {
		errs = append(errs, apperr.ValidationError{Field: "title", Message: "title is required"})
	}
	if strings.TrimSpace(url) == "" {
		errs = append(errs, apperr.ValidationError{Field: "url", Message: "url is required"})
	}

	return errs
}

// NormalizeEmail fixes the case policy: emails compare case-insensitively,
// so the lowercased form is both stored and looked up.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
