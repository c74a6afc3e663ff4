// Package billing prices tasks into invoice lines. It performs no I/O.
package billing

import (
	"github.com/samber/lo"

	"github.com/yukikurage/task-invoice-manager/internal/constants"
	"github.com/yukikurage/task-invoice-manager/internal/models"
)

// Line is one priced task
type Line struct {
	TaskID      uint64
	Description string
	Quantity    float64
	UnitPrice   float64
	Amount      float64
}

// Result holds the computed lines in input order and their sum
type Result struct {
	Lines []Line
	Total float64
}

// ComputeInvoiceLines prices every task of a project. A task with recorded
// time on a project with a positive hourly rate is billed by the hour;
// every other task is billed at its flat amount.
func ComputeInvoiceLines(project models.Project, tasks []models.Task) Result {
	lines := lo.Map(tasks, func(task models.Task, _ int) Line {
		amount := TaskAmount(project, task)
		return Line{
			TaskID:      task.ID,
			Description: task.Title,
			Quantity:    constants.DefaultItemQuantity,
			UnitPrice:   amount,
			Amount:      amount,
		}
	})

	return Result{
		Lines: lines,
		Total: lo.SumBy(lines, func(l Line) float64 { return l.Amount }),
	}
}

// TaskAmount returns the billable amount of a single task
func TaskAmount(project models.Project, task models.Task) float64 {
	if len(task.TimeEntries) > 0 && project.HourlyRate > 0 {
		return Hours(task.TimeEntries) * project.HourlyRate
	}
	return task.Amount
}

// Hours sums the recorded minutes of entries as fractional hours
func Hours(entries []models.TimeEntry) float64 {
	minutes := lo.SumBy(entries, func(e models.TimeEntry) int { return e.DurationMinutes })
	return float64(minutes) / 60
}

// FilterProjectTasks keeps the tasks whose id is listed in taskIDs, or all
// tasks when taskIDs is empty. Unknown ids are ignored.
func FilterProjectTasks(tasks []models.Task, taskIDs []uint64) []models.Task {
	if len(taskIDs) == 0 {
		return tasks
	}

	wanted := lo.SliceToMap(taskIDs, func(id uint64) (uint64, struct{}) {
		return id, struct{}{}
	})

	return lo.Filter(tasks, func(task models.Task, _ int) bool {
		_, ok := wanted[task.ID]
		return ok
	})
}
