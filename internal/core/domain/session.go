package domain

import "time"

// Session is the state of one interactive form session. It is created
// explicitly, carried through every workflow step and dropped on restart.
type Session struct {
	ID          string         `json:"id"`
	Description string         `json:"description"`
	Extracted   map[string]any `json:"extracted,omitempty"`
	Brief       Brief          `json:"brief"`
	Missing     []string       `json:"missing"`
	Validated   bool           `json:"validated"`
	Runs        int            `json:"runs"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// HasBrief reports whether an extraction has succeeded for the session.
func (s *Session) HasBrief() bool {
	return s.Extracted != nil
}
