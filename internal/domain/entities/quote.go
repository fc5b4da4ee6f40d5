package entities

import "time"

// QuoteStatus tracks the hand-off of a quote to the contacts backend.
type QuoteStatus string

const (
	QuoteStatusPending QuoteStatus = "pending"
	QuoteStatusSent    QuoteStatus = "sent"
	QuoteStatusFailed  QuoteStatus = "failed"
)

// Quote is the snapshot of an estimate taken when a visitor books a
// consultation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (session_id-index): session_id
//
// Monetary representation:
//   - Point/Min/Max are whole units of Currency, already rounded.
type Quote struct {
	ID         string         `json:"id"`
	SessionID  string         `json:"session_id"`
	ServiceID  string         `json:"service_id"`
	Complexity ComplexityTier `json:"complexity"`
	Features   []string       `json:"features"`
	Timeline   TimelineOption `json:"timeline"`
	Currency   Currency       `json:"currency"`
	Point      int64          `json:"point"`
	Min        int64          `json:"min"`
	Max        int64          `json:"max"`
	Summary    string         `json:"summary"`
	Status     QuoteStatus    `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}
