package models

import "time"

type Company struct {
	ID            uint64    `gorm:"primarykey" json:"id"`
	Name          string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	ContactPerson *string   `gorm:"type:varchar(255)" json:"contact_person"`
	Email         *string   `gorm:"type:varchar(255)" json:"email"`
	Phone         *string   `gorm:"type:varchar(50)" json:"phone"`
	Address       *string   `gorm:"type:text" json:"address"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relations. Deleting a company only clears these references.
	Projects []Project `gorm:"foreignKey:CompanyID;constraint:OnDelete:SET NULL" json:"-"`
	Tasks    []Task    `gorm:"foreignKey:CompanyID;constraint:OnDelete:SET NULL" json:"-"`
	Invoices []Invoice `gorm:"foreignKey:CompanyID;constraint:OnDelete:SET NULL" json:"-"`
}
