package services

import (
	"github.com/yukikurage/task-invoice-manager/internal/dto"
	"github.com/yukikurage/task-invoice-manager/internal/logger"
	"github.com/yukikurage/task-invoice-manager/internal/models"
	"github.com/yukikurage/task-invoice-manager/internal/repository"
)

// CompanyService handles company business logic
type CompanyService struct {
	companyRepo repository.CompanyRepository
	log         *logger.Logger
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(companyRepo repository.CompanyRepository, log *logger.Logger) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
		log:         log,
	}
}

func (s *CompanyService) ListCompanies() ([]models.Company, error) {
	return s.companyRepo.List()
}

func (s *CompanyService) GetCompany(id uint64) (*models.Company, error) {
	return s.companyRepo.FindByID(id)
}

// CreateCompany creates a company. Names are unique.
func (s *CompanyService) CreateCompany(req dto.CompanyRequest) (*models.Company, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := requireNonBlank("name", req.Name); err != nil {
		return nil, err
	}

	company := &models.Company{}
	req.Apply(company)

	if err := s.companyRepo.Create(company); err != nil {
		return nil, err
	}

	s.log.Infow("company created", "company_id", company.ID)
	return company, nil
}

// UpdateCompany replaces every field of an existing company
func (s *CompanyService) UpdateCompany(id uint64, req dto.CompanyRequest) (*models.Company, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := requireNonBlank("name", req.Name); err != nil {
		return nil, err
	}

	company, err := s.companyRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	req.Apply(company)

	if err := s.companyRepo.Update(company); err != nil {
		return nil, err
	}

	return company, nil
}

// DeleteCompany deletes a company, detaching its projects, tasks and invoices
func (s *CompanyService) DeleteCompany(id uint64) error {
	if _, err := s.companyRepo.FindByID(id); err != nil {
		return err
	}

	if err := s.companyRepo.Delete(id); err != nil {
		return err
	}

	s.log.Infow("company deleted", "company_id", id)
	return nil
}
