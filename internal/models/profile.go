// internal/models/profile.go
package models

import (
    "time"

    "github.com/google/uuid"
)

type Role string

const (
    RoleMember Role = "member"
    RoleAdmin  Role = "admin"
)

// Profile is the identity row for one user. Role gates the admin surface.
type Profile struct {
    ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
    Email        string    `json:"email" gorm:"uniqueIndex;not null"`
    Role         Role      `json:"role" gorm:"type:varchar(16);not null;default:member"`
    PasswordHash string    `json:"-" gorm:"not null"`
    CreatedAt    time.Time `json:"created_at"`
}
