// internal/auth/repository.go
package auth

import (
    "github.com/google/uuid"
    "gorm.io/gorm"

    "gne-trainer/internal/models"
)

type Repository struct {
    db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
    return &Repository{db: db}
}

func (r *Repository) GetProfileByEmail(email string) (*models.Profile, error) {
    var profile models.Profile
    result := r.db.Where("email = ?", email).First(&profile)
    if result.Error != nil {
        return nil, result.Error
    }
    return &profile, nil
}

func (r *Repository) GetProfileByID(id uuid.UUID) (*models.Profile, error) {
    var profile models.Profile
    result := r.db.First(&profile, "id = ?", id)
    if result.Error != nil {
        return nil, result.Error
    }
    return &profile, nil
}

func (r *Repository) CreateProfile(profile *models.Profile) error {
    return r.db.Create(profile).Error
}
