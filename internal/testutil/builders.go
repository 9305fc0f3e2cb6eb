// Package testutil provides fluent builders for test entities.
package testutil

import (
	"github.com/shopspring/decimal"

	"github.com/akyairhashvil/clubkitty/internal/models"
)

// IncomeSourceBuilder provides a fluent API for creating test sources.
type IncomeSourceBuilder struct {
	source models.IncomeSource
}

func NewIncomeSource() *IncomeSourceBuilder {
	return &IncomeSourceBuilder{source: models.NewIncomeSource("Test Source")}
}

func (b *IncomeSourceBuilder) WithName(name string) *IncomeSourceBuilder {
	b.source.Name = name
	return b
}

func (b *IncomeSourceBuilder) WithAmount(month models.MonthKey, amount string) *IncomeSourceBuilder {
	b.source.Amounts[month] = decimal.RequireFromString(amount)
	return b
}

func (b *IncomeSourceBuilder) Build() models.IncomeSource {
	return b.source.Clone()
}

// EventBuilder provides a fluent API for creating test events.
type EventBuilder struct {
	event models.EventExpense
}

func NewEvent() *EventBuilder {
	return &EventBuilder{
		event: models.NewEventExpense("Test Event", models.MonthJun, decimal.Zero, models.CategorySocial),
	}
}

func (b *EventBuilder) WithName(name string) *EventBuilder {
	b.event.Name = name
	return b
}

func (b *EventBuilder) WithMonth(m models.MonthKey) *EventBuilder {
	b.event.Month = m
	return b
}

func (b *EventBuilder) WithAmount(amount string) *EventBuilder {
	b.event.Amount = decimal.RequireFromString(amount)
	return b
}

func (b *EventBuilder) WithActual(amount string) *EventBuilder {
	v := decimal.RequireFromString(amount)
	b.event.ActualAmount = &v
	return b
}

func (b *EventBuilder) WithCategory(c models.EventCategory) *EventBuilder {
	b.event.Category = c
	return b
}

func (b *EventBuilder) WithNote(note string) *EventBuilder {
	b.event.Note = note
	return b
}

func (b *EventBuilder) WithTask(t models.EventTask) *EventBuilder {
	b.event.Tasks = append(b.event.Tasks, t)
	return b
}

func (b *EventBuilder) Build() models.EventExpense {
	return b.event.Clone()
}

// TaskBuilder provides a fluent API for creating test tasks.
type TaskBuilder struct {
	task models.EventTask
}

func NewTask() *TaskBuilder {
	return &TaskBuilder{task: models.NewEventTask("Test Task", "", "", "")}
}

func (b *TaskBuilder) WithTitle(title string) *TaskBuilder {
	b.task.Title = title
	return b
}

func (b *TaskBuilder) WithAssignee(assignee string) *TaskBuilder {
	b.task.Assignee = assignee
	return b
}

func (b *TaskBuilder) WithBudget(amount string) *TaskBuilder {
	b.task.Budget = decimal.RequireFromString(amount)
	return b
}

func (b *TaskBuilder) WithStatus(s models.TaskStatus) *TaskBuilder {
	b.task.Status = s
	return b
}

func (b *TaskBuilder) WithChecklist(texts ...string) *TaskBuilder {
	for _, text := range texts {
		b.task.Checklist = append(b.task.Checklist, models.NewChecklistItem(text))
	}
	return b
}

func (b *TaskBuilder) WithLink(eventID string) *TaskBuilder {
	b.task.LinkedEventID = eventID
	return b
}

func (b *TaskBuilder) Build() models.EventTask {
	return b.task.Clone()
}
