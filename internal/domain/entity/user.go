package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a shop owner account
type User struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ShopName          string         `gorm:"size:255;not null" json:"shop_name"`
	MobileNumber      string         `gorm:"size:20;unique;not null" json:"mobile_number"`
	Password          string         `gorm:"size:255;not null" json:"-"`
	PreferredLanguage string         `gorm:"size:10;default:'en'" json:"preferred_language"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships. There is no cascade: removing a user leaves its
	// products and bills in place.
	Products []Product `gorm:"foreignKey:UserID" json:"-"`
	Bills    []Bill    `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}
