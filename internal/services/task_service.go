package services

import (
	"github.com/yukikurage/task-invoice-manager/internal/dto"
	"github.com/yukikurage/task-invoice-manager/internal/logger"
	"github.com/yukikurage/task-invoice-manager/internal/models"
	"github.com/yukikurage/task-invoice-manager/internal/repository"
)

// TaskService handles task business logic
type TaskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	companyRepo repository.CompanyRepository
	log         *logger.Logger
}

// NewTaskService creates a new TaskService
func NewTaskService(
	taskRepo repository.TaskRepository,
	projectRepo repository.ProjectRepository,
	companyRepo repository.CompanyRepository,
	log *logger.Logger,
) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		companyRepo: companyRepo,
		log:         log,
	}
}

// ListTasks returns tasks in board order
func (s *TaskService) ListTasks(filter repository.TaskFilter) ([]models.Task, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, invalidField("status", *filter.Status)
	}
	if filter.InvoiceStatus != nil && !filter.InvoiceStatus.IsValid() {
		return nil, invalidField("invoice_status", *filter.InvoiceStatus)
	}
	return s.taskRepo.List(filter)
}

func (s *TaskService) GetTask(id uint64) (*models.Task, error) {
	return s.taskRepo.FindByID(id)
}

// CreateTask creates a task. A task without a company inherits the
// company of its project.
func (s *TaskService) CreateTask(req dto.CreateTaskRequest) (*models.Task, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := requireNonBlank("title", req.Title); err != nil {
		return nil, err
	}

	task := req.ToTask()

	if task.ProjectID != nil {
		project, err := s.projectRepo.FindByID(*task.ProjectID)
		if err != nil {
			return nil, err
		}
		if task.CompanyID == nil {
			task.CompanyID = project.CompanyID
		}
	}
	if err := s.ensureCompany(task.CompanyID); err != nil {
		return nil, err
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, err
	}

	s.log.Infow("task created", "task_id", task.ID, "project_id", task.ProjectID)
	return task, nil
}

// UpdateTask applies a partial update. Fields absent from the request are
// left untouched.
func (s *TaskService) UpdateTask(id uint64, req dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Title.Set {
		if req.Title.Value == nil {
			return nil, requireNonBlank("title", "")
		}
		if err := requireNonBlank("title", *req.Title.Value); err != nil {
			return nil, err
		}
	}
	if v := req.RateType.Value; v != nil && !v.IsValid() {
		return nil, invalidField("rate_type", *v)
	}
	if v := req.Status.Value; v != nil && !v.IsValid() {
		return nil, invalidField("status", *v)
	}
	if v := req.InvoiceStatus.Value; v != nil && !v.IsValid() {
		return nil, invalidField("invoice_status", *v)
	}
	if v := req.ProjectID.Value; v != nil {
		if _, err := s.projectRepo.FindByID(*v); err != nil {
			return nil, err
		}
	}
	if err := s.ensureCompany(req.CompanyID.Value); err != nil {
		return nil, err
	}

	req.Title.ApplyValue(&task.Title)
	req.ProjectID.Apply(&task.ProjectID)
	req.CompanyID.Apply(&task.CompanyID)
	req.Description.Apply(&task.Description)
	req.Amount.ApplyValue(&task.Amount)
	req.RateType.ApplyValue(&task.RateType)
	req.Status.ApplyValue(&task.Status)
	req.InvoiceStatus.ApplyValue(&task.InvoiceStatus)
	req.DueDate.Apply(&task.DueDate)
	req.SortOrder.ApplyValue(&task.SortOrder)

	if err := s.taskRepo.Update(task); err != nil {
		return nil, err
	}

	return task, nil
}

// DeleteTask deletes a task and its time entries
func (s *TaskService) DeleteTask(id uint64) error {
	if _, err := s.taskRepo.FindByID(id); err != nil {
		return err
	}

	if err := s.taskRepo.Delete(id); err != nil {
		return err
	}

	s.log.Infow("task deleted", "task_id", id)
	return nil
}

func (s *TaskService) ensureCompany(companyID *uint64) error {
	if companyID == nil {
		return nil
	}
	_, err := s.companyRepo.FindByID(*companyID)
	return err
}
