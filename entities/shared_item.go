package entities

import (
	"time"

	"github.com/google/uuid"
)

// SharedItem is a snapshot of a FoodItem offered to the community.
// Status moves one way: available -> claimed -> completed.
type SharedItem struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:(uuid_generate_v4())" json:"id"`
	FoodItemID        uuid.UUID  `json:"food_item_id"`
	UserID            uuid.UUID  `gorm:"index" json:"user_id"`
	Username          string     `json:"username"`
	Name              string     `json:"name"`
	Category          string     `json:"category"`
	Quantity          float64    `json:"quantity"`
	Unit              string     `json:"unit"`
	ExpiryDate        time.Time  `gorm:"index" json:"expiry_date"`
	PickupLocation    string     `json:"pickup_location"`
	Notes             string     `json:"notes,omitempty"`
	Status            string     `gorm:"index" json:"status"` // available, claimed, completed
	ClaimedBy         *uuid.UUID `gorm:"type:uuid" json:"claimed_by,omitempty"`
	ClaimedByUsername string     `json:"claimed_by_username,omitempty"`
	ClaimedDate       *time.Time `json:"claimed_date,omitempty"`

	FoodItem *FoodItem `gorm:"foreignKey:FoodItemID"`
	User     *User     `gorm:"foreignKey:UserID"`
	Timestamp
}
