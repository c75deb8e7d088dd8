// pkg/database/postgres.go
package database

import (
    "fmt"

    "gorm.io/driver/postgres"
    "gorm.io/gorm"

    "gne-trainer/internal/config"
)

func NewPostgresDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
    dsn := fmt.Sprintf(
        "host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
        cfg.Host,
        cfg.User,
        cfg.Password,
        cfg.DBName,
        cfg.Port,
    )

    db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
    if err != nil {
        return nil, err
    }

    return db, nil
}
