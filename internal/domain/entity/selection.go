package entity

import "time"

// Selection is a value the user picked, remembered across runs.
type Selection struct {
	ID        int64     `json:"id"`
	Value     string    `json:"value"`
	UseCount  int64     `json:"use_count"`
	LastUsed  time.Time `json:"last_used"`
	CreatedAt time.Time `json:"created_at"`
}

// NewSelection creates a selection used once, now.
func NewSelection(value string) *Selection {
	now := time.Now()
	return &Selection{
		Value:     value,
		UseCount:  1,
		LastUsed:  now,
		CreatedAt: now,
	}
}

// MarkUsed records another use of the selection.
func (s *Selection) MarkUsed() {
	s.UseCount++
	s.LastUsed = time.Now()
}
