// internal/items/handler.go
package items

import (
    "encoding/json"
    "errors"
    "net/http"
    "strconv"

    "github.com/go-playground/validator/v10"
    "github.com/gorilla/mux"
    "gorm.io/gorm"

    "gne-trainer/internal/models"
)

var validate = validator.New()

type Handler struct {
    service *Service
}

func NewHandler(service *Service) *Handler {
    return &Handler{service: service}
}

// List serves the admin item-bank view: the 50 most recent items, newest
// first, with the raw options/answer payloads included.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
    items, err := h.service.ListRecent()
    if err != nil {
        http.Error(w, "Load items error: "+err.Error(), http.StatusInternalServerError)
        return
    }

    json.NewEncoder(w).Encode(items)
}

type CreateItemRequest struct {
    Type       string          `json:"type" validate:"required,oneof=A B C D"`
    Prompt     string          `json:"prompt" validate:"required"`
    Options    json.RawMessage `json:"options" validate:"required"`
    Answer     json.RawMessage `json:"answer" validate:"required"`
    Explain    string          `json:"explain"`
    Difficulty int             `json:"difficulty"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
    var req CreateItemRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        http.Error(w, "Invalid request", http.StatusBadRequest)
        return
    }
    if err := validate.Struct(req); err != nil {
        http.Error(w, "type, prompt, options and answer are required", http.StatusBadRequest)
        return
    }

    item, err := h.service.Create(CreateItemInput{
        Type:       models.ItemType(req.Type),
        Prompt:     req.Prompt,
        Options:    req.Options,
        Answer:     req.Answer,
        Explain:    req.Explain,
        Difficulty: req.Difficulty,
    })
    if err != nil {
        http.Error(w, "Insert failed: "+err.Error(), http.StatusBadRequest)
        return
    }

    w.WriteHeader(http.StatusCreated)
    json.NewEncoder(w).Encode(item)
}

type ImportRequest struct {
    Lines string `json:"lines" validate:"required"`
}

func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
    var req ImportRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        http.Error(w, "Invalid request", http.StatusBadRequest)
        return
    }
    if err := validate.Struct(req); err != nil {
        http.Error(w, "No lines.", http.StatusBadRequest)
        return
    }

    count, err := h.service.ImportLines(req.Lines)
    if err != nil {
        if errors.Is(err, ErrNoLines) {
            http.Error(w, "No lines.", http.StatusBadRequest)
            return
        }
        http.Error(w, "Bulk insert failed: "+err.Error(), http.StatusBadRequest)
        return
    }

    json.NewEncoder(w).Encode(map[string]int{"imported": count})
}

// Delete removes one item. The interactive confirmation of the original UI
// becomes an explicit confirm=true query parameter here: without it nothing
// is deleted.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
    if r.URL.Query().Get("confirm") != "true" {
        http.Error(w, "Deletion requires confirm=true", http.StatusBadRequest)
        return
    }

    id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
    if err != nil {
        http.Error(w, "Invalid item id", http.StatusBadRequest)
        return
    }

    if err := h.service.Delete(uint(id)); err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            http.Error(w, "Item not found", http.StatusNotFound)
            return
        }
        http.Error(w, "Delete failed: "+err.Error(), http.StatusInternalServerError)
        return
    }

    json.NewEncoder(w).Encode(map[string]string{"status": "deleted"})
}
