// internal/models/round.go
package models

import "time"

// Round is the durable slice of one practice round, keyed per user. It is
// what the practice engine stores between the present and submit steps.
type Round struct {
    ItemID      uint         `json:"item_id"`
    PresentedAt time.Time    `json:"presented_at"`
    Locked      bool         `json:"locked"`
    Result      *RoundResult `json:"result,omitempty"`
}

// RoundResult is the graded outcome shown while a round is locked. A repeat
// submit for the same round gets this back unchanged.
type RoundResult struct {
    Choice        string `json:"choice"`
    IsCorrect     bool   `json:"is_correct"`
    CorrectAnswer string `json:"correct_answer"`
    Explain       string `json:"explain,omitempty"`
    TimeSpentMs   int    `json:"time_spent_ms"`
}
