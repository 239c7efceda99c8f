package entities

import (
	"github.com/google/uuid"
)

type ScanRecord struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `gorm:"index:idx_scan_user_value" json:"user_id"`

	Value       string `gorm:"index:idx_scan_user_value" json:"value"`
	Format      string `json:"format,omitempty"`
	Title       string `json:"title,omitempty"`
	Brand       string `json:"brand,omitempty"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`

	// Milliseconds since epoch. ScannedAt is set once at creation and never
	// changes; ExpiresAt is nil for records with no expiration.
	ScannedAt int64  `json:"scanned_at"`
	ExpiresAt *int64 `json:"expires_at,omitempty"`

	Notes          string `json:"notes,omitempty"`
	Source         string `json:"source"` // "camera" or "file"
	HasProductInfo bool   `json:"has_product_info"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
