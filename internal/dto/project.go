package dto

import (
	"github.com/yukikurage/task-invoice-manager/internal/models"
	"github.com/yukikurage/task-invoice-manager/internal/validator"
)

// ProjectRequest is the body of project create and full update requests
type ProjectRequest struct {
	Name        string             `json:"name" validate:"required"`
	Description *string            `json:"description"`
	CompanyID   *uint64            `json:"company_id"`
	ClientName  *string            `json:"client_name"`
	PricingType models.PricingType `json:"pricing_type" validate:"omitempty,oneof=hourly fixed"`
	HourlyRate  float64            `json:"hourly_rate" validate:"gte=0"`
	FixedPrice  float64            `json:"fixed_price" validate:"gte=0"`
}

func (r *ProjectRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// Apply copies the request onto project, defaulting the pricing type to hourly
func (r *ProjectRequest) Apply(project *models.Project) {
	project.Name = r.Name
	project.Description = r.Description
	project.CompanyID = r.CompanyID
	project.ClientName = r.ClientName
	project.PricingType = r.PricingType
	if project.PricingType == "" {
		project.PricingType = models.PricingTypeHourly
	}
	project.HourlyRate = r.HourlyRate
	project.FixedPrice = r.FixedPrice
}
