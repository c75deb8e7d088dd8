// internal/attempts/repository.go
package attempts

import (
    "log"

    "github.com/google/uuid"
    "gorm.io/gorm"

    "gne-trainer/internal/models"
)

// Attempts are append-only: the repository exposes no update or delete.
type Repository struct {
    db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
    return &Repository{db: db}
}

func (r *Repository) Create(attempt *models.Attempt) error {
    return r.db.Create(attempt).Error
}

func (r *Repository) ListRecentByUser(userID uuid.UUID, limit int) ([]models.Attempt, error) {
    var rows []models.Attempt
    err := r.db.Where("user_id = ?", userID).
        Order("id desc").
        Limit(limit).
        Find(&rows).Error
    if err != nil {
        log.Printf("Error listing attempts for user %s: %v", userID, err)
        return nil, err
    }
    return rows, nil
}
