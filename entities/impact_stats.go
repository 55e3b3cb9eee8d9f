package entities

import (
	"github.com/google/uuid"
)

// ImpactStats is the single running-total record per user. Totals only
// ever grow; accrual goes through pkg/impact, never ad hoc updates.
type ImpactStats struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:(uuid_generate_v4())" json:"id"`
	UserID            uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"user_id"`
	ItemsSaved        int       `json:"items_saved"`
	ItemsShared       int       `json:"items_shared"`
	CO2SavedKg        float64   `json:"co2_saved_kg"`
	WaterSavedLiters  float64   `json:"water_saved_liters"`
	MoneySavedDollars float64   `json:"money_saved_dollars"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
