package items

import (
    "encoding/json"
    "errors"
    "strings"
    "testing"

    "gne-trainer/internal/models"
)

type fakeStore struct {
    items       []models.Item
    inserted    []models.Item
    bulkBatches [][]models.Item
    bulkErr     error
    deleted     []uint
}

func (f *fakeStore) ListRecent(limit int) ([]models.Item, error) {
    if len(f.items) > limit {
        return f.items[:limit], nil
    }
    return f.items, nil
}

func (f *fakeStore) SamplePool(limit int) ([]models.Item, error) {
    return f.ListRecent(limit)
}

func (f *fakeStore) GetByID(id uint) (*models.Item, error) {
    for i := range f.items {
        if f.items[i].ID == id {
            return &f.items[i], nil
        }
    }
    return nil, errors.New("not found")
}

func (f *fakeStore) Insert(item *models.Item) error {
    f.inserted = append(f.inserted, *item)
    return nil
}

func (f *fakeStore) BulkInsert(items []models.Item) error {
    if f.bulkErr != nil {
        return f.bulkErr
    }
    f.bulkBatches = append(f.bulkBatches, items)
    return nil
}

func (f *fakeStore) Delete(id uint) error {
    f.deleted = append(f.deleted, id)
    return nil
}

func validInput() CreateItemInput {
    return CreateItemInput{
        Type:    models.TypeSentenceComplete,
        Prompt:  "In the morning.",
        Options: json.RawMessage(`["Complete","Incomplete"]`),
        Answer:  json.RawMessage(`{"correct":"Incomplete"}`),
    }
}

func TestCreateValid(t *testing.T) {
    store := &fakeStore{}
    svc := NewService(store)

    item, err := svc.Create(validInput())
    if err != nil {
        t.Fatalf("Create failed: %v", err)
    }
    if item.Difficulty != 1 {
        t.Errorf("Difficulty = %d, want default 1", item.Difficulty)
    }
    if len(store.inserted) != 1 {
        t.Fatalf("Inserted %d items, want 1", len(store.inserted))
    }
}

func TestCreateValidation(t *testing.T) {
    cases := []struct {
        name    string
        mutate  func(*CreateItemInput)
        wantErr string
    }{
        {
            "malformed options",
            func(in *CreateItemInput) { in.Options = json.RawMessage(`{"not":"an array"}`) },
            "options",
        },
        {
            "single option",
            func(in *CreateItemInput) { in.Options = json.RawMessage(`["only"]`) },
            "options",
        },
        {
            "malformed answer",
            func(in *CreateItemInput) { in.Answer = json.RawMessage(`not json`) },
            "answer",
        },
        {
            "answer missing correct",
            func(in *CreateItemInput) { in.Answer = json.RawMessage(`{"value":"x"}`) },
            "answer",
        },
        {
            "answer not among options",
            func(in *CreateItemInput) { in.Answer = json.RawMessage(`{"correct":"Maybe"}`) },
            "not one of the options",
        },
        {
            "bad type",
            func(in *CreateItemInput) { in.Type = "Z" },
            "type",
        },
        {
            "blank prompt",
            func(in *CreateItemInput) { in.Prompt = "  " },
            "prompt",
        },
    }

    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            store := &fakeStore{}
            svc := NewService(store)

            in := validInput()
            tc.mutate(&in)

            _, err := svc.Create(in)
            if err == nil {
                t.Fatal("Expected a validation error")
            }
            if !strings.Contains(err.Error(), tc.wantErr) {
                t.Errorf("Error %q does not name %q", err.Error(), tc.wantErr)
            }
            if len(store.inserted) != 0 {
                t.Errorf("Insert was called despite validation failure")
            }
        })
    }
}

// TestImportLinesBadLineAbortsAll: a single malformed line means zero rows
// reach the database and the error names the line.
func TestImportLinesBadLineAbortsAll(t *testing.T) {
    store := &fakeStore{}
    svc := NewService(store)

    text := `{"type":"A","prompt":"p1","options":["Complete","Incomplete"],"answer":{"correct":"Complete"}}
not json`

    _, err := svc.ImportLines(text)
    if err == nil {
        t.Fatal("Expected an error for the malformed line")
    }
    if !strings.Contains(err.Error(), "line 2") {
        t.Errorf("Error %q does not name line 2", err.Error())
    }
    if len(store.bulkBatches) != 0 {
        t.Errorf("BulkInsert was called despite a bad line")
    }
}

func TestImportLinesDefaultsAndExtras(t *testing.T) {
    store := &fakeStore{}
    svc := NewService(store)

    // Blank lines are skipped, unknown fields ignored, difficulty defaults
    // to 1 and explain to empty.
    text := `
{"type":"A","prompt":"p1","options":["Complete","Incomplete"],"answer":{"correct":"Complete"},"bogus":true}

{"type":"B","prompt":"p2","options":["a","b"],"answer":{"correct":"b"},"explain":"why","difficulty":3}
`

    count, err := svc.ImportLines(text)
    if err != nil {
        t.Fatalf("ImportLines failed: %v", err)
    }
    if count != 2 {
        t.Errorf("Imported count = %d, want 2", count)
    }
    if len(store.bulkBatches) != 1 {
        t.Fatalf("BulkInsert called %d times, want 1", len(store.bulkBatches))
    }

    batch := store.bulkBatches[0]
    if batch[0].Difficulty != 1 || batch[0].Explain != "" {
        t.Errorf("Line 1 defaults not applied: %+v", batch[0])
    }
    if batch[1].Difficulty != 3 || batch[1].Explain != "why" {
        t.Errorf("Line 2 fields not carried: %+v", batch[1])
    }
}

func TestImportLinesValidationPerLine(t *testing.T) {
    store := &fakeStore{}
    svc := NewService(store)

    text := `{"type":"A","prompt":"p1","options":["a","b"],"answer":{"correct":"c"}}`

    _, err := svc.ImportLines(text)
    if err == nil {
        t.Fatal("Expected an error for answer not among options")
    }
    if !strings.Contains(err.Error(), "line 1") {
        t.Errorf("Error %q does not name line 1", err.Error())
    }
    if len(store.bulkBatches) != 0 {
        t.Errorf("BulkInsert was called despite a bad line")
    }
}

func TestImportLinesEmpty(t *testing.T) {
    svc := NewService(&fakeStore{})

    _, err := svc.ImportLines("  \n \n")
    if !errors.Is(err, ErrNoLines) {
        t.Fatalf("Expected ErrNoLines, got %v", err)
    }
}

// TestImportLinesStoreFailure: a rejection by the store reports failure with
// nothing partially committed on the client side.
func TestImportLinesStoreFailure(t *testing.T) {
    store := &fakeStore{bulkErr: errors.New("constraint violation")}
    svc := NewService(store)

    text := `{"type":"A","prompt":"p1","options":["a","b"],"answer":{"correct":"a"}}`

    count, err := svc.ImportLines(text)
    if err == nil {
        t.Fatal("Expected the store error to surface")
    }
    if count != 0 {
        t.Errorf("Count = %d on failure, want 0", count)
    }
}
