// internal/models/attempt.go
package models

import (
    "encoding/json"
    "time"

    "github.com/google/uuid"
    "gorm.io/datatypes"
)

// Attempt is one graded learner response. Rows are append-only: the
// application never updates or deletes them.
type Attempt struct {
    ID          uint           `json:"id" gorm:"primaryKey"`
    UserID      uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;index"`
    ItemID      uint           `json:"item_id" gorm:"not null;index"`
    UserAnswer  datatypes.JSON `json:"user_answer" gorm:"type:jsonb"`
    IsCorrect   bool           `json:"is_correct"`
    TimeSpentMs int            `json:"time_spent_ms" gorm:"not null"`
    CreatedAt   time.Time      `json:"created_at"`
}

// UserAnswerJSON wraps a submitted choice into the user_answer payload.
func UserAnswerJSON(choice string) datatypes.JSON {
    raw, _ := json.Marshal(map[string]string{"choice": choice})
    return datatypes.JSON(raw)
}
