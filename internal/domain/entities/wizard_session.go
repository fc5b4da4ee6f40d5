package entities

import "time"

// WizardSession is a server-held wizard: the current step name plus the
// selection built so far. It lives in Redis and expires when idle.
type WizardSession struct {
	ID        string    `json:"id"`
	Step      string    `json:"step"`
	Selection Selection `json:"selection"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
