// Package menurepo provides data transfer objects and mapping functions for
// menu item persistence.
package menurepo

import (
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/menu"

	"github.com/google/uuid"
)

// MenuItemDTO represents the database structure for persisting menu items.
// Prices are stored as integer cents.
type MenuItemDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID  `gorm:"type:uuid;index"`
	CategoryID   *uuid.UUID `gorm:"type:uuid;index"`
	Name         string     `gorm:"type:varchar(255)"`
	PriceCents   int64
}

// TableName specifies the database table name for menu items.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(item *menu.MenuItem) MenuItemDTO {
	var categoryID *uuid.UUID
	if id := item.CategoryID(); id != nil {
		raw := id.Bytes()
		categoryID = &raw
	}

	return MenuItemDTO{
		ID:           item.ID().Bytes(),
		RestaurantID: item.RestaurantID().Bytes(),
		CategoryID:   categoryID,
		Name:         item.Name(),
		PriceCents:   item.Price().Cents(),
	}
}

func toDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var categoryID *kernel.UUID
	if dto.CategoryID != nil {
		cID, categoryErr := kernel.UUIDFromBytes((*dto.CategoryID)[:])
		if categoryErr != nil {
			return nil, categoryErr
		}
		categoryID = &cID
	}

	price, err := kernel.NewMoney(dto.PriceCents)
	if err != nil {
		return nil, err
	}

	return menu.NewMenuItem(id, restaurantID, categoryID, dto.Name, price)
}
