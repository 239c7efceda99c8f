package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email       string    `json:"email,omitempty"`
	Role        string    `json:"role"`
	IsAnonymous bool      `json:"is_anonymous"`

	ScanRecords []*ScanRecord `gorm:"foreignKey:UserID"`
	Timestamp
}
