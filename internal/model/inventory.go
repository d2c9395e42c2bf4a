package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Inventory item states. Only active items count toward recommendations.
const (
	InventoryStatusActive   = "active"
	InventoryStatusConsumed = "consumed"
	InventoryStatusExpired  = "expired"
)

// InventoryItem is one tracked grocery item for a user.
type InventoryItem struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	Quantity   int            `gorm:"not null;default:1" json:"quantity"`
	Category   string         `gorm:"size:100" json:"category"`
	Status     string         `gorm:"size:20;not null;default:'active';index" json:"status"`
	ExpiryDate *time.Time     `json:"expiry_date"`
}

// BeforeCreate assigns the ID. The schema carries no database-side default,
// so the model works unchanged on Postgres and the sqlite test databases.
func (i *InventoryItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
