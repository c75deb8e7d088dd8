// internal/practice/handler.go
package practice

import (
    "encoding/json"
    "errors"
    "fmt"
    "net/http"

    "github.com/go-playground/validator/v10"

    "gne-trainer/internal/auth"
)

var validate = validator.New()

type Handler struct {
    engine *Engine
}

func NewHandler(engine *Engine) *Handler {
    return &Handler{engine: engine}
}

// Next serves a fresh round. An empty item bank is a distinct empty state,
// not an error.
func (h *Handler) Next(w http.ResponseWriter, r *http.Request) {
    userID, ok := auth.UserID(r.Context())
    if !ok {
        http.Error(w, "Unauthorized", http.StatusUnauthorized)
        return
    }

    item, err := h.engine.Next(r.Context(), userID)
    if err != nil {
        if errors.Is(err, ErrNoItems) {
            json.NewEncoder(w).Encode(map[string]string{
                "status":  "empty",
                "message": "No items found.",
            })
            return
        }
        http.Error(w, "Error: "+err.Error(), http.StatusInternalServerError)
        return
    }

    json.NewEncoder(w).Encode(map[string]interface{}{
        "status": "ok",
        "item":   item,
    })
}

type SubmitRequest struct {
    Choice string `json:"choice" validate:"required"`
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
    userID, ok := auth.UserID(r.Context())
    if !ok {
        http.Error(w, "Unauthorized", http.StatusUnauthorized)
        return
    }

    var req SubmitRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        http.Error(w, "Invalid request", http.StatusBadRequest)
        return
    }
    if err := validate.Struct(req); err != nil {
        http.Error(w, "choice is required", http.StatusBadRequest)
        return
    }

    result, err := h.engine.Submit(r.Context(), userID, req.Choice)
    if err != nil {
        switch {
        case errors.Is(err, ErrNoActiveRound):
            http.Error(w, "No active round", http.StatusConflict)
        case errors.Is(err, ErrRoundLocked):
            http.Error(w, "Round already submitted", http.StatusConflict)
        default:
            http.Error(w, "Error: "+err.Error(), http.StatusInternalServerError)
        }
        return
    }

    feedback := "Correct ✅"
    if !result.IsCorrect {
        feedback = fmt.Sprintf("Wrong ❌ Answer: %s", result.CorrectAnswer)
    }

    json.NewEncoder(w).Encode(map[string]interface{}{
        "status":   "ok",
        "feedback": feedback,
        "result":   result,
    })
}
