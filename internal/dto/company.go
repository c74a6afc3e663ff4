package dto

import (
	"github.com/yukikurage/task-invoice-manager/internal/models"
	"github.com/yukikurage/task-invoice-manager/internal/validator"
)

// CompanyRequest is the body of company create and full update requests
type CompanyRequest struct {
	Name          string  `json:"name" validate:"required"`
	ContactPerson *string `json:"contact_person"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
}

func (r *CompanyRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// Apply copies the request onto company
func (r *CompanyRequest) Apply(company *models.Company) {
	company.Name = r.Name
	company.ContactPerson = r.ContactPerson
	company.Email = r.Email
	company.Phone = r.Phone
	company.Address = r.Address
}
