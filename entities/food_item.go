package entities

import (
	"time"

	"github.com/google/uuid"
)

type FoodItem struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:(uuid_generate_v4())" json:"id"`
	UserID          uuid.UUID  `gorm:"index" json:"user_id"`
	ReceiptScanID   *string    `json:"receipt_scan_id,omitempty"`
	Name            string     `json:"name"`
	Category        string     `json:"category"`
	Quantity        float64    `json:"quantity"`
	Unit            string     `json:"unit"`
	PurchaseDate    time.Time  `json:"purchase_date"`
	ExpiryDate      time.Time  `gorm:"index" json:"expiry_date"`
	StorageLocation string     `json:"storage_location"` // fridge, freezer, pantry, counter
	EstimatedValue  float64    `json:"estimated_value"`
	Consumed        bool       `gorm:"index" json:"consumed"`
	ConsumedDate    *time.Time `json:"consumed_date,omitempty"`
	Shared          bool       `json:"shared"`
	SharedDate      *time.Time `json:"shared_date,omitempty"`
	Notes           string     `json:"notes,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
