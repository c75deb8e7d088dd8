// internal/models/item.go
package models

import (
    "encoding/json"
    "fmt"
    "time"

    "gorm.io/datatypes"
)

// ItemType tags the grammar skill an item tests.
type ItemType string

const (
    TypeSentenceComplete ItemType = "A"
    TypeFillInChoice     ItemType = "B"
    TypeCommaLogic       ItemType = "C"
    TypeTransitionLogic  ItemType = "D"
)

func (t ItemType) Valid() bool {
    switch t {
    case TypeSentenceComplete, TypeFillInChoice, TypeCommaLogic, TypeTransitionLogic:
        return true
    }
    return false
}

type Item struct {
    ID         uint           `json:"id" gorm:"primaryKey"`
    Type       ItemType       `json:"type" gorm:"type:varchar(1);not null"`
    Prompt     string         `json:"prompt" gorm:"not null"`
    Options    datatypes.JSON `json:"options" gorm:"type:jsonb;not null"`
    Answer     datatypes.JSON `json:"answer" gorm:"type:jsonb;not null"`
    Explain    string         `json:"explain,omitempty"`
    Difficulty int            `json:"difficulty" gorm:"not null;default:1"`
    CreatedAt  time.Time      `json:"created_at"`
}

// answerPayload is the expected shape of the answer jsonb column.
type answerPayload struct {
    Correct *string `json:"correct"`
}

// CorrectAnswer decodes the answer payload. The column is free-form jsonb, so
// a missing or non-string "correct" field is rejected here instead of being
// trusted downstream.
func (i *Item) CorrectAnswer() (string, error) {
    var p answerPayload
    if err := json.Unmarshal(i.Answer, &p); err != nil {
        return "", fmt.Errorf("item %d: malformed answer payload: %w", i.ID, err)
    }
    if p.Correct == nil {
        return "", fmt.Errorf("item %d: answer payload has no string \"correct\" field", i.ID)
    }
    return *p.Correct, nil
}

// OptionList decodes the options payload into the ordered choice labels.
func (i *Item) OptionList() ([]string, error) {
    var opts []string
    if err := json.Unmarshal(i.Options, &opts); err != nil {
        return nil, fmt.Errorf("item %d: malformed options payload: %w", i.ID, err)
    }
    if len(opts) == 0 {
        return nil, fmt.Errorf("item %d: options payload is empty", i.ID)
    }
    return opts, nil
}
