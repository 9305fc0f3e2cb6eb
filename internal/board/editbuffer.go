package board

import (
	"strings"

	"github.com/akyairhashvil/clubkitty/internal/models"
)

// EditBuffer stages a task edit. Checklist changes accumulate here and only
// reach the board when the enclosing edit is saved, so cancelling an edit
// discards every pending checklist change. Committing through EditTask is a
// single wholesale replace, which keeps a stale task-level edit from
// clobbering checklist edits made in the same modal.
type EditBuffer struct {
	Title         string
	Description   string
	Assignee      string
	BudgetText    string
	Checklist     []models.ChecklistItem
	LinkedEventID string
}

// NewEditBuffer seeds a buffer from the task's committed state.
func NewEditBuffer(task models.EventTask) EditBuffer {
	checklist := make([]models.ChecklistItem, len(task.Checklist))
	copy(checklist, task.Checklist)
	return EditBuffer{
		Title:         task.Title,
		Description:   task.Description,
		Assignee:      task.Assignee,
		BudgetText:    task.Budget.String(),
		Checklist:     checklist,
		LinkedEventID: task.LinkedEventID,
	}
}

// AddChecklistItem stages a new unchecked item. Blank text is ignored.
func (b *EditBuffer) AddChecklistItem(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	b.Checklist = append(b.Checklist, models.NewChecklistItem(strings.TrimSpace(text)))
}

// RemoveChecklistItem stages removal of one item.
func (b *EditBuffer) RemoveChecklistItem(itemID string) {
	out := b.Checklist[:0]
	for _, item := range b.Checklist {
		if item.ID != itemID {
			out = append(out, item)
		}
	}
	b.Checklist = out
}

// EditChecklistItemText stages a text change on one item.
func (b *EditBuffer) EditChecklistItemText(itemID, text string) {
	for i := range b.Checklist {
		if b.Checklist[i].ID == itemID {
			b.Checklist[i].Text = text
			return
		}
	}
}

// ToggleChecklistItem stages a completed-flag flip on one item.
func (b *EditBuffer) ToggleChecklistItem(itemID string) {
	for i := range b.Checklist {
		if b.Checklist[i].ID == itemID {
			b.Checklist[i].Completed = !b.Checklist[i].Completed
			return
		}
	}
}

// Apply produces the task as it would look after committing the buffer.
// Identity and status are preserved; everything editable is replaced. An
// emptied title keeps the previous one so a save can never blank a task.
func (b EditBuffer) Apply(task models.EventTask) models.EventTask {
	title := strings.TrimSpace(b.Title)
	if title != "" {
		task.Title = title
	}
	task.Description = strings.TrimSpace(b.Description)
	assignee := strings.TrimSpace(b.Assignee)
	if assignee == "" {
		assignee = models.DefaultAssignee
	}
	task.Assignee = assignee
	task.Budget = models.ParseAmount(b.BudgetText)
	checklist := make([]models.ChecklistItem, len(b.Checklist))
	copy(checklist, b.Checklist)
	task.Checklist = checklist
	task.LinkedEventID = b.LinkedEventID
	return task
}
