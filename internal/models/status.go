package models

import "fmt"

// Status represents an article's publishing lifecycle state
type Status string

const (
	StatusDraft     Status = "draft"
	StatusReview    Status = "review"
	StatusPublished Status = "published"
)

// ValidStatuses defines allowed article statuses
var ValidStatuses = map[Status]bool{
	StatusDraft:     true,
	StatusReview:    true,
	StatusPublished: true,
}

// StatusTransitions is the publishing state machine's transition table.
// Every pair is currently allowed, including published -> draft: the
// editorial workflow relies on editors being able to pull an article back
// at any point. Tightening the workflow later is a data change here, not
// a logic change.
var StatusTransitions = map[Status]map[Status]bool{
	StatusDraft:     {StatusDraft: true, StatusReview: true, StatusPublished: true},
	StatusReview:    {StatusDraft: true, StatusReview: true, StatusPublished: true},
	StatusPublished: {StatusDraft: true, StatusReview: true, StatusPublished: true},
}

// ParseStatus validates a raw status string
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !ValidStatuses[status] {
		return "", fmt.Errorf("unknown status %q", s)
	}
	return status, nil
}

// CanTransition consults the transition table. Setting the current status
// again is always a no-op success.
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	return StatusTransitions[from][to]
}
