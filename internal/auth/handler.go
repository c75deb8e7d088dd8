// internal/auth/handler.go
package auth

import (
    "encoding/json"
    "net/http"

    "github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Handler struct {
    service *Service
}

func NewHandler(service *Service) *Handler {
    return &Handler{service: service}
}

type RegisterRequest struct {
    Email    string `json:"email" validate:"required,email"`
    Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
    Email    string `json:"email" validate:"required,email"`
    Password string `json:"password" validate:"required"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
    var req RegisterRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        http.Error(w, "Invalid request", http.StatusBadRequest)
        return
    }
    if err := validate.Struct(req); err != nil {
        http.Error(w, "Please enter a valid email and a password of at least 8 characters", http.StatusBadRequest)
        return
    }

    if err := h.service.SignUp(req.Email, req.Password); err != nil {
        http.Error(w, "Registration failed", http.StatusBadRequest)
        return
    }

    w.WriteHeader(http.StatusCreated)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
    var req LoginRequest
    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
        http.Error(w, "Invalid request", http.StatusBadRequest)
        return
    }
    if err := validate.Struct(req); err != nil {
        http.Error(w, "Please enter email and password", http.StatusBadRequest)
        return
    }

    token, err := h.service.SignIn(req.Email, req.Password)
    if err != nil {
        http.Error(w, "Invalid credentials", http.StatusUnauthorized)
        return
    }

    json.NewEncoder(w).Encode(map[string]string{"token": token})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
    rawToken, ok := RawToken(r.Context())
    if !ok {
        http.Error(w, "Unauthorized", http.StatusUnauthorized)
        return
    }

    if err := h.service.SignOut(r.Context(), rawToken); err != nil {
        http.Error(w, "Logout failed", http.StatusInternalServerError)
        return
    }

    json.NewEncoder(w).Encode(map[string]string{"status": "signed out"})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
    userID, ok := UserID(r.Context())
    if !ok {
        http.Error(w, "Unauthorized", http.StatusUnauthorized)
        return
    }

    profile, err := h.service.Profile(userID)
    if err != nil {
        http.Error(w, "Profile not found", http.StatusNotFound)
        return
    }

    json.NewEncoder(w).Encode(profile)
}
