package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bill represents a persisted sale. It is immutable once created except
// for deletion; its items are a point-in-time copy of product name and
// price, so later catalog edits never change a historical bill.
type Bill struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerName   string         `gorm:"size:255;not null" json:"customer_name"`
	CustomerMobile string         `gorm:"size:20" json:"customer_mobile,omitempty"`
	Total          int64          `gorm:"not null;default:0" json:"-"` // Stored in cents
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User  User       `gorm:"foreignKey:UserID" json:"-"`
	Items []BillItem `gorm:"foreignKey:BillID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (b Bill) MarshalJSON() ([]byte, error) {
	type Alias Bill
	return json.Marshal(&struct {
		Alias
		Total float64 `json:"total"`
	}{
		Alias: Alias(b),
		Total: float64(b.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new bill
func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}

// GetTotalDecimal returns the total as a decimal
func (b *Bill) GetTotalDecimal() float64 {
	return float64(b.Total) / 100
}

// InvoiceNo is the short invoice number printed on the rendered document:
// the last 8 characters of the bill id.
func (b *Bill) InvoiceNo() string {
	s := b.ID.String()
	return s[len(s)-8:]
}

// BillItem represents a line item on a bill. ProductID is a plain
// reference, not a foreign key: the referenced product may be edited or
// deleted without touching the snapshot stored here.
type BillItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BillID    uuid.UUID `gorm:"type:uuid;not null;index" json:"bill_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null" json:"product_id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	UnitPrice int64     `gorm:"not null" json:"-"` // Stored in cents
	Quantity  int       `gorm:"not null" json:"quantity"`
	Total     int64     `gorm:"not null" json:"-"` // Stored in cents
	CreatedAt time.Time `json:"created_at"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (bi BillItem) MarshalJSON() ([]byte, error) {
	type Alias BillItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"price"`
		Total     float64 `json:"total"`
	}{
		Alias:     Alias(bi),
		UnitPrice: float64(bi.UnitPrice) / 100,
		Total:     float64(bi.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new bill item
func (bi *BillItem) BeforeCreate(tx *gorm.DB) error {
	if bi.ID == uuid.Nil {
		bi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BillItem model
func (BillItem) TableName() string {
	return "bill_items"
}
