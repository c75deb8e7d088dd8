package attempts

import (
    "testing"

    "github.com/google/uuid"

    "gne-trainer/internal/models"
)

type fakeHistoryStore struct {
    rows []models.Attempt
}

func (f *fakeHistoryStore) ListRecentByUser(userID uuid.UUID, limit int) ([]models.Attempt, error) {
    if len(f.rows) > limit {
        return f.rows[:limit], nil
    }
    return f.rows, nil
}

type fakePrompts struct {
    prompts map[uint]string
    asked   []uint
}

func (f *fakePrompts) PromptsByIDs(ids []uint) (map[uint]string, error) {
    f.asked = ids
    return f.prompts, nil
}

// TestRecentForUserUnknownItem: an attempt whose item was deleted later must
// still render, with a placeholder prompt.
func TestRecentForUserUnknownItem(t *testing.T) {
    userID := uuid.New()
    store := &fakeHistoryStore{rows: []models.Attempt{
        {ID: 12, UserID: userID, ItemID: 3, IsCorrect: true, TimeSpentMs: 1200},
        {ID: 11, UserID: userID, ItemID: 9, IsCorrect: false, TimeSpentMs: 800},
    }}
    prompts := &fakePrompts{prompts: map[uint]string{3: "In the morning."}}

    svc := NewService(store, prompts)

    entries, err := svc.RecentForUser(userID)
    if err != nil {
        t.Fatalf("RecentForUser failed: %v", err)
    }
    if len(entries) != 2 {
        t.Fatalf("Got %d entries, want 2", len(entries))
    }

    if entries[0].Prompt != "In the morning." {
        t.Errorf("Entry 0 prompt = %q", entries[0].Prompt)
    }
    if entries[1].Prompt != "(unknown item)" {
        t.Errorf("Deleted item rendered as %q, want \"(unknown item)\"", entries[1].Prompt)
    }

    // Newest-first order from the store is preserved.
    if entries[0].ID != 12 || entries[1].ID != 11 {
        t.Errorf("Order not preserved: %d, %d", entries[0].ID, entries[1].ID)
    }
}

func TestRecentForUserDeduplicatesLookup(t *testing.T) {
    userID := uuid.New()
    store := &fakeHistoryStore{rows: []models.Attempt{
        {ID: 3, ItemID: 5},
        {ID: 2, ItemID: 5},
        {ID: 1, ItemID: 7},
    }}
    prompts := &fakePrompts{prompts: map[uint]string{5: "a", 7: "b"}}

    svc := NewService(store, prompts)
    if _, err := svc.RecentForUser(userID); err != nil {
        t.Fatalf("RecentForUser failed: %v", err)
    }

    if len(prompts.asked) != 2 {
        t.Errorf("Looked up %d ids, want 2 unique", len(prompts.asked))
    }
}

func TestRecentForUserEmpty(t *testing.T) {
    svc := NewService(&fakeHistoryStore{}, &fakePrompts{prompts: map[uint]string{}})

    entries, err := svc.RecentForUser(uuid.New())
    if err != nil {
        t.Fatalf("RecentForUser failed: %v", err)
    }
    if len(entries) != 0 {
        t.Errorf("Got %d entries, want none", len(entries))
    }
}
