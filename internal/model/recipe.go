package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kimjuyoung1127/fridgechef-backend/internal/types"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// JSONBRecipeData stores a structured recipe payload in a JSONB column.
type JSONBRecipeData types.RecipeData

// Value implements the driver.Valuer interface
func (d JSONBRecipeData) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Scan implements the sql.Scanner interface
func (d *JSONBRecipeData) Scan(value interface{}) error {
	if value == nil {
		*d = JSONBRecipeData{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, d)
}

// Recipe is a stored recipe, either imported/seeded or persisted from the
// generative path. MenuName is the lookup key used by the detail endpoint.
type Recipe struct {
	ID             uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	DeletedAt      gorm.DeletedAt   `gorm:"index" json:"-"`
	MenuName       string           `gorm:"size:255;not null;index" json:"menu_name"`
	RecipeData     JSONBRecipeData  `gorm:"type:jsonb;not null" json:"recipe_data"`
	SearchKeywords JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"search_keywords"`
	IsGenerated    bool             `json:"is_generated"`
}

// BeforeCreate assigns the ID. The schema carries no database-side default,
// so the model works unchanged on Postgres and the sqlite test databases.
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
