package services

import (
	"github.com/yukikurage/task-invoice-manager/internal/dto"
	"github.com/yukikurage/task-invoice-manager/internal/logger"
	"github.com/yukikurage/task-invoice-manager/internal/models"
	"github.com/yukikurage/task-invoice-manager/internal/repository"
)

// ProjectService handles project business logic
type ProjectService struct {
	projectRepo repository.ProjectRepository
	companyRepo repository.CompanyRepository
	log         *logger.Logger
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo repository.ProjectRepository, companyRepo repository.CompanyRepository, log *logger.Logger) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		companyRepo: companyRepo,
		log:         log,
	}
}

func (s *ProjectService) ListProjects(filter repository.ProjectFilter) ([]models.Project, error) {
	return s.projectRepo.List(filter)
}

func (s *ProjectService) GetProject(id uint64) (*models.Project, error) {
	return s.projectRepo.FindByID(id)
}

func (s *ProjectService) CreateProject(req dto.ProjectRequest) (*models.Project, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	project := &models.Project{}
	req.Apply(project)

	if err := s.projectRepo.Create(project); err != nil {
		return nil, err
	}

	s.log.Infow("project created", "project_id", project.ID)
	return project, nil
}

// UpdateProject replaces every field of an existing project
func (s *ProjectService) UpdateProject(id uint64, req dto.ProjectRequest) (*models.Project, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	req.Apply(project)

	if err := s.projectRepo.Update(project); err != nil {
		return nil, err
	}

	return project, nil
}

// DeleteProject deletes a project with its tasks, time entries and invoices
func (s *ProjectService) DeleteProject(id uint64) error {
	if _, err := s.projectRepo.FindByID(id); err != nil {
		return err
	}

	if err := s.projectRepo.Delete(id); err != nil {
		return err
	}

	s.log.Infow("project deleted", "project_id", id)
	return nil
}

func (s *ProjectService) validate(req dto.ProjectRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := requireNonBlank("name", req.Name); err != nil {
		return err
	}
	if req.CompanyID != nil {
		if _, err := s.companyRepo.FindByID(*req.CompanyID); err != nil {
			return err
		}
	}
	return nil
}
