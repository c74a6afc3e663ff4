package services

import (
	"github.com/yukikurage/task-invoice-manager/internal/dto"
	ierr "github.com/yukikurage/task-invoice-manager/internal/errors"
	"github.com/yukikurage/task-invoice-manager/internal/logger"
	"github.com/yukikurage/task-invoice-manager/internal/models"
	"github.com/yukikurage/task-invoice-manager/internal/repository"
)

// TimeEntryService handles time entry business logic
type TimeEntryService struct {
	entryRepo repository.TimeEntryRepository
	taskRepo  repository.TaskRepository
	log       *logger.Logger
}

// NewTimeEntryService creates a new TimeEntryService
func NewTimeEntryService(entryRepo repository.TimeEntryRepository, taskRepo repository.TaskRepository, log *logger.Logger) *TimeEntryService {
	return &TimeEntryService{
		entryRepo: entryRepo,
		taskRepo:  taskRepo,
		log:       log,
	}
}

// ListTimeEntries returns the entries of one task, newest first. The task
// filter is mandatory.
func (s *TimeEntryService) ListTimeEntries(taskID *uint64) ([]models.TimeEntry, error) {
	if taskID == nil {
		return nil, ierr.NewError("task_id missing").
			WithHint("task_id is required").
			WithReportableDetails(map[string]any{"task_id": "required"}).
			Mark(ierr.ErrValidation)
	}
	return s.entryRepo.ListByTask(*taskID)
}

func (s *TimeEntryService) GetTimeEntry(id uint64) (*models.TimeEntry, error) {
	return s.entryRepo.FindByID(id)
}

func (s *TimeEntryService) CreateTimeEntry(req dto.CreateTimeEntryRequest) (*models.TimeEntry, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.taskRepo.FindByID(req.TaskID); err != nil {
		return nil, err
	}

	entry := req.ToTimeEntry()
	if err := s.entryRepo.Create(entry); err != nil {
		return nil, err
	}

	s.log.Infow("time entry recorded", "time_entry_id", entry.ID, "task_id", entry.TaskID, "minutes", entry.DurationMinutes)
	return entry, nil
}

func (s *TimeEntryService) UpdateTimeEntry(id uint64, req dto.UpdateTimeEntryRequest) (*models.TimeEntry, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entry, err := s.entryRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	req.Apply(entry)

	if err := s.entryRepo.Update(entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *TimeEntryService) DeleteTimeEntry(id uint64) error {
	if _, err := s.entryRepo.FindByID(id); err != nil {
		return err
	}
	return s.entryRepo.Delete(id)
}
