package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kimjuyoung1127/fridgechef-backend/internal/model"
)

// InventoryService reads a user's grocery inventory.
type InventoryService struct {
	db *gorm.DB
}

// NewInventoryService creates a new InventoryService instance
func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{db: db}
}

// ReadInventoryNames returns the names of the user's active inventory items,
// soonest-expiring first.
func (s *InventoryService) ReadInventoryNames(ctx context.Context, userID string) ([]string, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	var items []model.InventoryItem
	err = s.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", uid, model.InventoryStatusActive).
		Order("expiry_date ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return names, nil
}

// ListActiveItems returns the full active inventory rows for a user.
func (s *InventoryService) ListActiveItems(ctx context.Context, userID uuid.UUID) ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, model.InventoryStatusActive).
		Order("expiry_date ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}
	return items, nil
}
