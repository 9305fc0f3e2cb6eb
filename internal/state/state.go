// Package state holds the single application state container. There are no
// ambient singletons: the TUI owns one AppState value and every mutation
// returns a new value, leaving the old one intact. That keeps change
// detection a plain comparison and makes the container trivial to test.
// Handling is single-threaded and synchronous; persistence happens after a
// mutation commits, as a fire-and-forget side effect owned by the caller.
package state

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/akyairhashvil/clubkitty/internal/board"
	"github.com/akyairhashvil/clubkitty/internal/models"
)

// Owner names the board a task operation targets: one event's board, or the
// shared central board when EventID is empty.
type Owner struct {
	EventID string
}

// Central is the shared board not attached to any event.
var Central = Owner{}

// AppState is the container for all four collections plus the carry-over.
type AppState struct {
	Data models.AppData
}

// New returns an empty state with a normalized badminton config.
func New() AppState {
	return AppState{Data: models.AppData{
		Events:          []models.EventExpense{},
		IncomeSources:   []models.IncomeSource{},
		CentralTasks:    []models.EventTask{},
		CarryOver:       decimal.Zero,
		BadmintonConfig: models.NewBadmintonConfig(),
	}}
}

// Seed returns the initial state for a fresh install: the two standing
// income rows a club always has, both zero-filled.
func Seed() AppState {
	s := New()
	s.Data.IncomeSources = []models.IncomeSource{
		models.NewIncomeSource("Membership dues"),
		models.NewIncomeSource("Sponsorship"),
	}
	return s
}

// FromData wraps loaded data, normalizing collections so downstream code
// can rely on the all-13-keys invariants.
func FromData(data models.AppData) AppState {
	for i := range data.IncomeSources {
		data.IncomeSources[i] = data.IncomeSources[i].Normalize()
	}
	data.BadmintonConfig = data.BadmintonConfig.Normalize()
	if data.Events == nil {
		data.Events = []models.EventExpense{}
	}
	if data.IncomeSources == nil {
		data.IncomeSources = []models.IncomeSource{}
	}
	if data.CentralTasks == nil {
		data.CentralTasks = []models.EventTask{}
	}
	return AppState{Data: data}
}

// Clone returns a deep copy.
func (s AppState) Clone() AppState {
	data := s.Data
	events := make([]models.EventExpense, len(data.Events))
	for i, e := range data.Events {
		events[i] = e.Clone()
	}
	data.Events = events
	sources := make([]models.IncomeSource, len(data.IncomeSources))
	for i, src := range data.IncomeSources {
		sources[i] = src.Clone()
	}
	data.IncomeSources = sources
	central := make([]models.EventTask, len(data.CentralTasks))
	for i, t := range data.CentralTasks {
		central[i] = t.Clone()
	}
	data.CentralTasks = central
	data.BadmintonConfig = data.BadmintonConfig.Clone()
	return AppState{Data: data}
}

func (s AppState) touched() AppState {
	s.Data.LastUpdated = time.Now().UTC()
	return s
}

// --- Income ---

// AddIncomeSource appends a zero-filled source.
func (s AppState) AddIncomeSource(name string) AppState {
	s = s.Clone()
	s.Data.IncomeSources = append(s.Data.IncomeSources, models.NewIncomeSource(name))
	return s.touched()
}

// DeleteIncomeSource removes a source by id; unknown ids are a no-op.
func (s AppState) DeleteIncomeSource(id string) AppState {
	s = s.Clone()
	out := s.Data.IncomeSources[:0]
	for _, src := range s.Data.IncomeSources {
		if src.ID != id {
			out = append(out, src)
		}
	}
	s.Data.IncomeSources = out
	return s.touched()
}

// RenameIncomeSource updates a source's display name and tags.
func (s AppState) RenameIncomeSource(id, name, kind, owner string) AppState {
	s = s.Clone()
	for i := range s.Data.IncomeSources {
		if s.Data.IncomeSources[i].ID == id {
			s.Data.IncomeSources[i].Name = name
			s.Data.IncomeSources[i].Kind = kind
			s.Data.IncomeSources[i].Owner = owner
			break
		}
	}
	return s.touched()
}

// SetIncomeCell writes one month cell. Negative amounts clamp to zero.
func (s AppState) SetIncomeCell(id string, month models.MonthKey, amount decimal.Decimal) AppState {
	if !month.Valid() {
		return s
	}
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	s = s.Clone()
	for i := range s.Data.IncomeSources {
		if s.Data.IncomeSources[i].ID == id {
			s.Data.IncomeSources[i].Amounts[month] = amount
			break
		}
	}
	return s.touched()
}

// SetCarryOver replaces the previous-period balance.
func (s AppState) SetCarryOver(amount decimal.Decimal) AppState {
	s = s.Clone()
	s.Data.CarryOver = amount
	return s.touched()
}

// --- Events ---

// AddEvent appends a new planned event with an empty board.
func (s AppState) AddEvent(e models.EventExpense) AppState {
	s = s.Clone()
	s.Data.Events = append(s.Data.Events, e.Clone())
	return s.touched()
}

// UpdateEvent replaces an event's planning fields, leaving its board alone.
func (s AppState) UpdateEvent(id string, apply func(*models.EventExpense)) AppState {
	s = s.Clone()
	for i := range s.Data.Events {
		if s.Data.Events[i].ID == id {
			apply(&s.Data.Events[i])
			break
		}
	}
	return s.touched()
}

// DeleteEvent removes an event and its board. Central tasks that linked to
// it keep their stored id; the link simply stops resolving.
func (s AppState) DeleteEvent(id string) AppState {
	s = s.Clone()
	out := s.Data.Events[:0]
	for _, e := range s.Data.Events {
		if e.ID != id {
			out = append(out, e)
		}
	}
	s.Data.Events = out
	return s.touched()
}

// FindEvent locates an event by id.
func (s AppState) FindEvent(id string) (models.EventExpense, bool) {
	for _, e := range s.Data.Events {
		if e.ID == id {
			return e, true
		}
	}
	return models.EventExpense{}, false
}

// --- Boards ---

// TasksFor returns the task list the owner names. An unknown event id
// yields an empty board.
func (s AppState) TasksFor(owner Owner) []models.EventTask {
	if owner == Central {
		return s.Data.CentralTasks
	}
	if e, ok := s.FindEvent(owner.EventID); ok {
		return e.Tasks
	}
	return nil
}

// WithTasks replaces the owner's task list wholesale.
func (s AppState) WithTasks(owner Owner, tasks []models.EventTask) AppState {
	s = s.Clone()
	if owner == Central {
		s.Data.CentralTasks = tasks
		return s.touched()
	}
	for i := range s.Data.Events {
		if s.Data.Events[i].ID == owner.EventID {
			s.Data.Events[i].Tasks = tasks
			break
		}
	}
	return s.touched()
}

// AddTask adds a task to the owner's board; reports whether the title was
// accepted.
func (s AppState) AddTask(owner Owner, title, description, assignee, budget string) (AppState, bool) {
	tasks, ok := board.AddTask(s.TasksFor(owner), title, description, assignee, budget)
	if !ok {
		return s, false
	}
	return s.WithTasks(owner, tasks), true
}

// DeleteTask removes a task from the owner's board.
func (s AppState) DeleteTask(owner Owner, taskID string) AppState {
	return s.WithTasks(owner, board.DeleteTask(s.TasksFor(owner), taskID))
}

// SetTaskStatus replaces one task's status.
func (s AppState) SetTaskStatus(owner Owner, taskID string, status models.TaskStatus) AppState {
	return s.WithTasks(owner, board.SetStatus(s.TasksFor(owner), taskID, status))
}

// MoveTask is the drag-style status change.
func (s AppState) MoveTask(owner Owner, taskID string, target models.TaskStatus) AppState {
	return s.WithTasks(owner, board.MoveTask(s.TasksFor(owner), taskID, target))
}

// EditTask commits an edit buffer to one task.
func (s AppState) EditTask(owner Owner, taskID string, buf board.EditBuffer) AppState {
	return s.WithTasks(owner, board.EditTask(s.TasksFor(owner), taskID, buf))
}

// ToggleChecklistItem flips one checklist flag on the committed board.
func (s AppState) ToggleChecklistItem(owner Owner, taskID, itemID string) AppState {
	return s.WithTasks(owner, board.ToggleChecklistItem(s.TasksFor(owner), taskID, itemID))
}

// --- Badminton ---

// ToggleBadmintonMonth flips a month's selection, keeping its sessions.
func (s AppState) ToggleBadmintonMonth(month models.MonthKey) AppState {
	if !month.Valid() {
		return s
	}
	s = s.Clone()
	plan := s.Data.BadmintonConfig[month]
	plan.IsSelected = !plan.IsSelected
	s.Data.BadmintonConfig[month] = plan
	return s.touched()
}

// AddBadmintonSession appends a session row to a month.
func (s AppState) AddBadmintonSession(month models.MonthKey, session models.Session) AppState {
	if !month.Valid() {
		return s
	}
	s = s.Clone()
	plan := s.Data.BadmintonConfig[month]
	plan.Sessions = append(plan.Sessions, session)
	s.Data.BadmintonConfig[month] = plan
	return s.touched()
}

// RemoveBadmintonSession deletes one session row.
func (s AppState) RemoveBadmintonSession(month models.MonthKey, sessionID string) AppState {
	if !month.Valid() {
		return s
	}
	s = s.Clone()
	plan := s.Data.BadmintonConfig[month]
	out := plan.Sessions[:0]
	for _, sess := range plan.Sessions {
		if sess.ID != sessionID {
			out = append(out, sess)
		}
	}
	plan.Sessions = out
	s.Data.BadmintonConfig[month] = plan
	return s.touched()
}

// UpdateBadmintonSession replaces one session row by id.
func (s AppState) UpdateBadmintonSession(month models.MonthKey, session models.Session) AppState {
	if !month.Valid() {
		return s
	}
	s = s.Clone()
	plan := s.Data.BadmintonConfig[month]
	for i := range plan.Sessions {
		if plan.Sessions[i].ID == session.ID {
			plan.Sessions[i] = session
			break
		}
	}
	s.Data.BadmintonConfig[month] = plan
	return s.touched()
}
