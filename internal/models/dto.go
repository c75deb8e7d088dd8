// internal/models/dto.go
package models

import "time"

// PracticeItemDTO is what the learner sees during a round. The answer payload
// stays on the server.
type PracticeItemDTO struct {
    ID      uint     `json:"id"`
    Prompt  string   `json:"prompt"`
    Options []string `json:"options"`
}

func (i *Item) ToPracticeDTO() (PracticeItemDTO, error) {
    opts, err := i.OptionList()
    if err != nil {
        return PracticeItemDTO{}, err
    }
    return PracticeItemDTO{
        ID:      i.ID,
        Prompt:  i.Prompt,
        Options: opts,
    }, nil
}

// HistoryEntry is one attempt joined to its item's prompt. Prompt falls back
// to a placeholder when the item has since been deleted.
type HistoryEntry struct {
    ID          uint      `json:"id"`
    ItemID      uint      `json:"item_id"`
    Prompt      string    `json:"prompt"`
    IsCorrect   bool      `json:"is_correct"`
    TimeSpentMs int       `json:"time_spent_ms"`
    CreatedAt   time.Time `json:"created_at"`
}
