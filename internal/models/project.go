package models

import "time"

type PricingType string

const (
	PricingTypeHourly PricingType = "hourly"
	PricingTypeFixed  PricingType = "fixed"
)

type Project struct {
	ID          uint64      `gorm:"primarykey" json:"id"`
	Name        string      `gorm:"type:varchar(255);not null" json:"name"`
	Description *string     `gorm:"type:text" json:"description"`
	CompanyID   *uint64     `gorm:"index" json:"company_id"`
	ClientName  *string     `gorm:"type:varchar(255)" json:"client_name"`
	PricingType PricingType `gorm:"type:varchar(20);not null" json:"pricing_type"`
	HourlyRate  float64     `gorm:"not null" json:"hourly_rate"`
	FixedPrice  float64     `gorm:"not null" json:"fixed_price"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	// Relations
	Tasks    []Task    `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
	Invoices []Invoice `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
}
