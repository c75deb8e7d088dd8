// internal/attempts/handler.go
package attempts

import (
    "encoding/json"
    "net/http"

    "gne-trainer/internal/auth"
)

type Handler struct {
    service *Service
}

func NewHandler(service *Service) *Handler {
    return &Handler{service: service}
}

// History serves the learner's recent attempts, newest first.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
    userID, ok := auth.UserID(r.Context())
    if !ok {
        http.Error(w, "Unauthorized", http.StatusUnauthorized)
        return
    }

    entries, err := h.service.RecentForUser(userID)
    if err != nil {
        http.Error(w, "Error: "+err.Error(), http.StatusInternalServerError)
        return
    }

    if len(entries) == 0 {
        json.NewEncoder(w).Encode(map[string]interface{}{
            "attempts": []struct{}{},
            "message":  "No attempts yet.",
        })
        return
    }

    json.NewEncoder(w).Encode(map[string]interface{}{"attempts": entries})
}
