// internal/attempts/service.go
package attempts

import (
    "github.com/google/uuid"

    "gne-trainer/internal/models"
)

const historyLimit = 50

// unknownItemPrompt is shown when an attempt references an item that has
// since been deleted. Deleting an item never touches its attempts.
const unknownItemPrompt = "(unknown item)"

// HistoryStore is the read side; satisfied by *Repository.
type HistoryStore interface {
    ListRecentByUser(userID uuid.UUID, limit int) ([]models.Attempt, error)
}

// PromptSource resolves item ids to prompts; satisfied by the items
// repository.
type PromptSource interface {
    PromptsByIDs(ids []uint) (map[uint]string, error)
}

type Service struct {
    repo    HistoryStore
    prompts PromptSource
}

func NewService(repo HistoryStore, prompts PromptSource) *Service {
    return &Service{repo: repo, prompts: prompts}
}

// RecentForUser returns the user's latest attempts, newest first, joined to
// their item prompts.
func (s *Service) RecentForUser(userID uuid.UUID) ([]models.HistoryEntry, error) {
    rows, err := s.repo.ListRecentByUser(userID, historyLimit)
    if err != nil {
        return nil, err
    }

    seen := map[uint]bool{}
    var ids []uint
    for _, a := range rows {
        if !seen[a.ItemID] {
            seen[a.ItemID] = true
            ids = append(ids, a.ItemID)
        }
    }

    prompts, err := s.prompts.PromptsByIDs(ids)
    if err != nil {
        return nil, err
    }

    entries := make([]models.HistoryEntry, len(rows))
    for i, a := range rows {
        prompt, ok := prompts[a.ItemID]
        if !ok {
            prompt = unknownItemPrompt
        }
        entries[i] = models.HistoryEntry{
            ID:          a.ID,
            ItemID:      a.ItemID,
            Prompt:      prompt,
            IsCorrect:   a.IsCorrect,
            TimeSpentMs: a.TimeSpentMs,
            CreatedAt:   a.CreatedAt,
        }
    }
    return entries, nil
}
