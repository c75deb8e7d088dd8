// internal/items/service.go
package items

import (
    "encoding/json"
    "errors"
    "fmt"
    "strings"

    "gorm.io/datatypes"

    "gne-trainer/internal/models"
)

// PoolLimit bounds the practice candidate pool: every practice pick is drawn
// from at most this many items.
const PoolLimit = 50

// ListLimit bounds the admin and history list views.
const ListLimit = 50

var ErrNoLines = errors.New("no lines to import")

// Store is the persistence surface the service needs; satisfied by
// *Repository.
type Store interface {
    ListRecent(limit int) ([]models.Item, error)
    SamplePool(limit int) ([]models.Item, error)
    GetByID(id uint) (*models.Item, error)
    Insert(item *models.Item) error
    BulkInsert(items []models.Item) error
    Delete(id uint) error
}

type Service struct {
    repo Store
}

func NewService(repo Store) *Service {
    return &Service{repo: repo}
}

func (s *Service) ListRecent() ([]models.Item, error) {
    return s.repo.ListRecent(ListLimit)
}

func (s *Service) SamplePool() ([]models.Item, error) {
    return s.repo.SamplePool(PoolLimit)
}

func (s *Service) GetByID(id uint) (*models.Item, error) {
    return s.repo.GetByID(id)
}

func (s *Service) Delete(id uint) error {
    return s.repo.Delete(id)
}

// CreateItemInput carries the admin form fields. Options and Answer arrive as
// raw JSON text and are validated here, before any database call.
type CreateItemInput struct {
    Type       models.ItemType
    Prompt     string
    Options    json.RawMessage
    Answer     json.RawMessage
    Explain    string
    Difficulty int
}

// Create validates and inserts a single item. Errors name the failing field
// so the admin form can point at it.
func (s *Service) Create(input CreateItemInput) (*models.Item, error) {
    item, err := buildItem(input)
    if err != nil {
        return nil, err
    }
    if err := s.repo.Insert(item); err != nil {
        return nil, err
    }
    return item, nil
}

// importLine is one bulk-import row. Unknown extra fields are ignored;
// explain defaults to empty and difficulty to 1.
type importLine struct {
    Type       models.ItemType `json:"type"`
    Prompt     string          `json:"prompt"`
    Options    json.RawMessage `json:"options"`
    Answer     json.RawMessage `json:"answer"`
    Explain    string          `json:"explain"`
    Difficulty *int            `json:"difficulty"`
}

// ImportLines parses newline-delimited JSON and inserts the batch
// all-or-nothing: the first bad line aborts the whole import before any
// database call, and the error names that line.
func (s *Service) ImportLines(text string) (int, error) {
    var batch []models.Item
    lineNo := 0
    for _, raw := range strings.Split(text, "\n") {
        lineNo++
        line := strings.TrimSpace(raw)
        if line == "" {
            continue
        }

        var row importLine
        if err := json.Unmarshal([]byte(line), &row); err != nil {
            return 0, fmt.Errorf("line %d: invalid JSON: %v", lineNo, err)
        }

        difficulty := 1
        if row.Difficulty != nil {
            difficulty = *row.Difficulty
        }

        item, err := buildItem(CreateItemInput{
            Type:       row.Type,
            Prompt:     row.Prompt,
            Options:    row.Options,
            Answer:     row.Answer,
            Explain:    row.Explain,
            Difficulty: difficulty,
        })
        if err != nil {
            return 0, fmt.Errorf("line %d: %v", lineNo, err)
        }
        batch = append(batch, *item)
    }

    if len(batch) == 0 {
        return 0, ErrNoLines
    }

    if err := s.repo.BulkInsert(batch); err != nil {
        return 0, err
    }
    return len(batch), nil
}

// buildItem validates the free-form payload fields and enforces the
// answer.correct ∈ options invariant at write time.
func buildItem(input CreateItemInput) (*models.Item, error) {
    if !input.Type.Valid() {
        return nil, fmt.Errorf("type must be one of A, B, C, D")
    }
    if strings.TrimSpace(input.Prompt) == "" {
        return nil, errors.New("prompt is required")
    }

    options, err := parseOptions(input.Options)
    if err != nil {
        return nil, err
    }
    correct, err := parseAnswer(input.Answer)
    if err != nil {
        return nil, err
    }

    found := false
    for _, op := range options {
        if op == correct {
            found = true
            break
        }
    }
    if !found {
        return nil, fmt.Errorf("answer %q is not one of the options", correct)
    }

    difficulty := input.Difficulty
    if difficulty <= 0 {
        difficulty = 1
    }

    return &models.Item{
        Type:       input.Type,
        Prompt:     input.Prompt,
        Options:    datatypes.JSON(input.Options),
        Answer:     datatypes.JSON(input.Answer),
        Explain:    input.Explain,
        Difficulty: difficulty,
    }, nil
}

func parseOptions(raw json.RawMessage) ([]string, error) {
    if len(raw) == 0 {
        return nil, errors.New("options is required")
    }
    var options []string
    if err := json.Unmarshal(raw, &options); err != nil {
        return nil, fmt.Errorf("options is not a JSON array of strings: %v", err)
    }
    if len(options) < 2 {
        return nil, errors.New("options needs at least two choices")
    }
    for _, op := range options {
        if strings.TrimSpace(op) == "" {
            return nil, errors.New("options may not contain blank choices")
        }
    }
    return options, nil
}

func parseAnswer(raw json.RawMessage) (string, error) {
    if len(raw) == 0 {
        return "", errors.New("answer is required")
    }
    var payload struct {
        Correct *string `json:"correct"`
    }
    if err := json.Unmarshal(raw, &payload); err != nil {
        return "", fmt.Errorf("answer is not a JSON object: %v", err)
    }
    if payload.Correct == nil || *payload.Correct == "" {
        return "", errors.New("answer needs a string \"correct\" field")
    }
    return *payload.Correct, nil
}
