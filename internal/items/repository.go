// internal/items/repository.go
package items

import (
    "log"

    "gorm.io/gorm"

    "gne-trainer/internal/models"
)

type Repository struct {
    db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
    return &Repository{db: db}
}

// ListRecent returns the newest items first, for the admin list view.
func (r *Repository) ListRecent(limit int) ([]models.Item, error) {
    var items []models.Item
    err := r.db.Order("id desc").Limit(limit).Find(&items).Error
    if err != nil {
        log.Printf("Error listing items: %v", err)
        return nil, err
    }
    return items, nil
}

// SamplePool fetches the candidate pool in default order; the caller picks
// from it at random. Items beyond the limit are unreachable by design of the
// original flow.
func (r *Repository) SamplePool(limit int) ([]models.Item, error) {
    var items []models.Item
    err := r.db.Limit(limit).Find(&items).Error
    if err != nil {
        log.Printf("Error fetching item pool: %v", err)
        return nil, err
    }
    return items, nil
}

func (r *Repository) GetByID(id uint) (*models.Item, error) {
    var item models.Item
    err := r.db.First(&item, id).Error
    if err != nil {
        return nil, err
    }
    return &item, nil
}

func (r *Repository) Insert(item *models.Item) error {
    err := r.db.Create(item).Error
    if err != nil {
        log.Printf("Error inserting item: %v", err)
        return err
    }
    log.Printf("Inserted item %d", item.ID)
    return nil
}

// BulkInsert writes the whole batch in one transaction: either every row
// commits or none do.
func (r *Repository) BulkInsert(items []models.Item) error {
    return r.db.Transaction(func(tx *gorm.DB) error {
        return tx.Create(&items).Error
    })
}

func (r *Repository) Delete(id uint) error {
    result := r.db.Delete(&models.Item{}, id)
    if result.Error != nil {
        log.Printf("Error deleting item %d: %v", id, result.Error)
        return result.Error
    }
    if result.RowsAffected == 0 {
        return gorm.ErrRecordNotFound
    }
    return nil
}

// PromptsByIDs maps item ids to prompts for the history join. IDs of deleted
// items are simply absent from the map.
func (r *Repository) PromptsByIDs(ids []uint) (map[uint]string, error) {
    if len(ids) == 0 {
        return map[uint]string{}, nil
    }

    var rows []struct {
        ID     uint
        Prompt string
    }
    err := r.db.Model(&models.Item{}).
        Select("id", "prompt").
        Where("id IN ?", ids).
        Find(&rows).Error
    if err != nil {
        return nil, err
    }

    prompts := make(map[uint]string, len(rows))
    for _, row := range rows {
        prompts[row.ID] = row.Prompt
    }
    return prompts, nil
}
