// Package board manages one task collection, either an event's own board or
// the shared central board. Every operation is copy-on-write: the input
// slice is never mutated and the result is a fresh slice, so callers can
// compare states by value and the TUI can commit or discard freely.
package board

import (
	"strings"

	"github.com/akyairhashvil/clubkitty/internal/models"
)

// AddTask appends a new Todo task. A blank or whitespace-only title is
// rejected; the second return value reports whether anything was added.
func AddTask(tasks []models.EventTask, title, description, assignee, budget string) ([]models.EventTask, bool) {
	if strings.TrimSpace(title) == "" {
		return tasks, false
	}
	out := cloneTasks(tasks)
	out = append(out, models.NewEventTask(title, description, assignee, budget))
	return out, true
}

// DeleteTask removes the task with the given id. Unknown ids are a no-op;
// the confirmation step lives in the UI, not here.
func DeleteTask(tasks []models.EventTask, taskID string) []models.EventTask {
	out := make([]models.EventTask, 0, len(tasks))
	for _, t := range tasks {
		if t.ID == taskID {
			continue
		}
		out = append(out, t.Clone())
	}
	return out
}

// SetStatus replaces a task's status. Unknown ids and invalid statuses are
// no-ops. Any state may move to any other state directly.
func SetStatus(tasks []models.EventTask, taskID string, status models.TaskStatus) []models.EventTask {
	if !status.Valid() {
		return tasks
	}
	out := cloneTasks(tasks)
	for i := range out {
		if out[i].ID == taskID {
			out[i].Status = status
			break
		}
	}
	return out
}

// MoveTask is the drag-style variant of SetStatus: it moves the task to the
// target column only when its current column differs.
func MoveTask(tasks []models.EventTask, taskID string, target models.TaskStatus) []models.EventTask {
	if t, ok := FindTask(tasks, taskID); !ok || t.Status == target {
		return tasks
	}
	return SetStatus(tasks, taskID, target)
}

// EditTask replaces a task's editable fields wholesale from a committed edit
// buffer. The replace is atomic: either every field from the buffer lands,
// or (unknown id) nothing changes.
func EditTask(tasks []models.EventTask, taskID string, buf EditBuffer) []models.EventTask {
	out := cloneTasks(tasks)
	for i := range out {
		if out[i].ID == taskID {
			out[i] = buf.Apply(out[i])
			break
		}
	}
	return out
}

// ToggleChecklistItem flips the completed flag on one checklist item of one
// task. Either id missing is a no-op.
func ToggleChecklistItem(tasks []models.EventTask, taskID, itemID string) []models.EventTask {
	out := cloneTasks(tasks)
	for i := range out {
		if out[i].ID != taskID {
			continue
		}
		for j := range out[i].Checklist {
			if out[i].Checklist[j].ID == itemID {
				out[i].Checklist[j].Completed = !out[i].Checklist[j].Completed
				break
			}
		}
		break
	}
	return out
}

// FindTask locates a task by id.
func FindTask(tasks []models.EventTask, taskID string) (models.EventTask, bool) {
	for _, t := range tasks {
		if t.ID == taskID {
			return t, true
		}
	}
	return models.EventTask{}, false
}

// TasksInStatus returns the tasks in one column, preserving order.
func TasksInStatus(tasks []models.EventTask, status models.TaskStatus) []models.EventTask {
	var out []models.EventTask
	for _, t := range tasks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

// CountByStatus tallies the board columns.
func CountByStatus(tasks []models.EventTask) map[models.TaskStatus]int {
	counts := make(map[models.TaskStatus]int, len(models.TaskStatuses))
	for _, t := range tasks {
		counts[t.Status]++
	}
	return counts
}

// ResolveLink resolves a task's linked event against the live event list.
// A link to a deleted event is treated as no link at all; it is navigation
// metadata only and never feeds the aggregator.
func ResolveLink(events []models.EventExpense, task models.EventTask) (models.EventExpense, bool) {
	if task.LinkedEventID == "" {
		return models.EventExpense{}, false
	}
	for _, e := range events {
		if e.ID == task.LinkedEventID {
			return e, true
		}
	}
	return models.EventExpense{}, false
}

func cloneTasks(tasks []models.EventTask) []models.EventTask {
	out := make([]models.EventTask, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}
