package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// Snapshot files store amounts as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// TaskStatus enumerates the three board columns. Any status may move to any
// other; the board is a tri-state label, not a pipeline.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
)

// TaskStatuses is the fixed column ordering of the board.
var TaskStatuses = []TaskStatus{StatusTodo, StatusInProgress, StatusDone}

// Valid reports whether s is one of the three board states.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Label returns the column heading for a status.
func (s TaskStatus) Label() string {
	switch s {
	case StatusTodo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusDone:
		return "Done"
	}
	return string(s)
}

// EventCategory tags a planned event expense.
type EventCategory string

const (
	CategoryEquipment EventCategory = "equipment"
	CategoryVenue     EventCategory = "venue"
	CategoryFood      EventCategory = "food"
	CategoryTravel    EventCategory = "travel"
	CategorySocial    EventCategory = "social"
	CategoryOther     EventCategory = "other"
)

// EventCategories is the fixed set offered in pickers and exports.
var EventCategories = []EventCategory{
	CategoryEquipment, CategoryVenue, CategoryFood,
	CategoryTravel, CategorySocial, CategoryOther,
}

// Valid reports whether c is one of the fixed categories.
func (c EventCategory) Valid() bool {
	for _, known := range EventCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Label is the display name shown in pickers and reports.
func (c EventCategory) Label() string {
	if c == "" {
		return CategoryOther.Label()
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

// ParseCategory normalizes free-form input to a category, falling back to
// "other" for anything unrecognized.
func ParseCategory(s string) EventCategory {
	c := EventCategory(strings.ToLower(strings.TrimSpace(s)))
	if c.Valid() {
		return c
	}
	return CategoryOther
}

// DefaultAssignee is the placeholder used when a task has no named owner.
const DefaultAssignee = "Unassigned"

// IncomeSource is one row of the income grid: a named source with an amount
// for every one of the 13 month buckets. The Amounts map always carries all
// 13 keys, zero-filled.
type IncomeSource struct {
	ID      string                      `json:"id"`
	Name    string                      `json:"name"`
	Kind    string                      `json:"kind"`
	Owner   string                      `json:"owner"`
	Amounts map[MonthKey]decimal.Decimal `json:"amounts"`
}

// NewIncomeSource creates a zero-filled source.
func NewIncomeSource(name string) IncomeSource {
	amounts := make(map[MonthKey]decimal.Decimal, len(MonthOrder))
	for _, m := range MonthOrder {
		amounts[m] = decimal.Zero
	}
	return IncomeSource{
		ID:      uuid.NewString(),
		Name:    name,
		Amounts: amounts,
	}
}

// Normalize fills in any missing month keys with zero so every source
// satisfies the all-13-keys invariant regardless of where it was loaded from.
func (s IncomeSource) Normalize() IncomeSource {
	if s.Amounts == nil {
		s.Amounts = make(map[MonthKey]decimal.Decimal, len(MonthOrder))
	}
	for _, m := range MonthOrder {
		if _, ok := s.Amounts[m]; !ok {
			s.Amounts[m] = decimal.Zero
		}
	}
	return s
}

// Clone returns a deep copy.
func (s IncomeSource) Clone() IncomeSource {
	amounts := make(map[MonthKey]decimal.Decimal, len(s.Amounts))
	for k, v := range s.Amounts {
		amounts[k] = v
	}
	s.Amounts = amounts
	return s
}

// ChecklistItem is a sub-item of a task. It has no lifecycle of its own.
type ChecklistItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// NewChecklistItem creates an unchecked item.
func NewChecklistItem(text string) ChecklistItem {
	return ChecklistItem{ID: uuid.NewString(), Text: text}
}

// EventTask is a single card on an event board or the central board.
// LinkedEventID is a weak reference: it stores an event identity only and is
// resolved against the live event list on read.
type EventTask struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description,omitempty"`
	Assignee      string          `json:"assignee"`
	Budget        decimal.Decimal `json:"budget"`
	Status        TaskStatus      `json:"status"`
	Checklist     []ChecklistItem `json:"checklist,omitempty"`
	LinkedEventID string          `json:"linkedEventId,omitempty"`
}

// NewEventTask creates a task in the Todo column. The assignee falls back to
// the placeholder and the budget to zero when the input does not parse; all
// defaulting happens here rather than at call sites.
func NewEventTask(title, description, assignee, budget string) EventTask {
	assignee = strings.TrimSpace(assignee)
	if assignee == "" {
		assignee = DefaultAssignee
	}
	return EventTask{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Assignee:    assignee,
		Budget:      ParseAmount(budget),
		Status:      StatusTodo,
	}
}

// Clone returns a deep copy.
func (t EventTask) Clone() EventTask {
	if t.Checklist != nil {
		list := make([]ChecklistItem, len(t.Checklist))
		copy(list, t.Checklist)
		t.Checklist = list
	}
	return t
}

// EventExpense is a planned event with its own task board.
type EventExpense struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Month        MonthKey        `json:"month"`
	Amount       decimal.Decimal `json:"amount"`
	ActualAmount *decimal.Decimal `json:"actualAmount,omitempty"`
	Category     EventCategory   `json:"category"`
	Note         string          `json:"note,omitempty"`
	Tasks        []EventTask     `json:"tasks"`
}

// NewEventExpense creates an event with an empty board.
func NewEventExpense(name string, month MonthKey, amount decimal.Decimal, category EventCategory) EventExpense {
	if !month.Valid() {
		month = MonthJan
	}
	if !category.Valid() {
		category = CategoryOther
	}
	return EventExpense{
		ID:       uuid.NewString(),
		Name:     name,
		Month:    month,
		Amount:   amount,
		Category: category,
		Tasks:    []EventTask{},
	}
}

// Clone returns a deep copy.
func (e EventExpense) Clone() EventExpense {
	if e.ActualAmount != nil {
		v := *e.ActualAmount
		e.ActualAmount = &v
	}
	tasks := make([]EventTask, len(e.Tasks))
	for i, t := range e.Tasks {
		tasks[i] = t.Clone()
	}
	e.Tasks = tasks
	return e
}

// Session is a single badminton booking: a court rate, a court count, and
// hours per session.
type Session struct {
	ID         string          `json:"id"`
	HourlyRate decimal.Decimal `json:"hourlyRate"`
	Courts     int             `json:"courts"`
	Hours      decimal.Decimal `json:"hours"`
}

// NewSession creates a session row.
func NewSession(rate decimal.Decimal, courts int, hours decimal.Decimal) Session {
	return Session{ID: uuid.NewString(), HourlyRate: rate, Courts: courts, Hours: hours}
}

// Cost is rate x courts x hours for this one session.
func (s Session) Cost() decimal.Decimal {
	return s.HourlyRate.Mul(decimal.NewFromInt(int64(s.Courts))).Mul(s.Hours)
}

// MonthPlan is one month of the badminton calculator. Deselecting a month
// keeps its sessions; they simply stop counting toward the total.
type MonthPlan struct {
	IsSelected bool      `json:"isSelected"`
	Sessions   []Session `json:"sessions"`
}

// Clone returns a deep copy.
func (p MonthPlan) Clone() MonthPlan {
	sessions := make([]Session, len(p.Sessions))
	copy(sessions, p.Sessions)
	p.Sessions = sessions
	return p
}

// BadmintonConfig maps every month bucket to its plan.
type BadmintonConfig map[MonthKey]MonthPlan

// NewBadmintonConfig returns a fresh config: all 13 months present,
// deselected, with empty session lists.
func NewBadmintonConfig() BadmintonConfig {
	cfg := make(BadmintonConfig, len(MonthOrder))
	for _, m := range MonthOrder {
		cfg[m] = MonthPlan{Sessions: []Session{}}
	}
	return cfg
}

// Normalize fills in any missing months so all 13 keys are present.
func (c BadmintonConfig) Normalize() BadmintonConfig {
	if c == nil {
		return NewBadmintonConfig()
	}
	for _, m := range MonthOrder {
		if plan, ok := c[m]; !ok {
			c[m] = MonthPlan{Sessions: []Session{}}
		} else if plan.Sessions == nil {
			plan.Sessions = []Session{}
			c[m] = plan
		}
	}
	return c
}

// Clone returns a deep copy.
func (c BadmintonConfig) Clone() BadmintonConfig {
	out := make(BadmintonConfig, len(c))
	for k, v := range c {
		out[k] = v.Clone()
	}
	return out
}

// AppData is the persisted snapshot: the unit of export and import. It must
// round-trip through JSON losslessly apart from LastUpdated.
type AppData struct {
	Events          []EventExpense  `json:"events"`
	IncomeSources   []IncomeSource  `json:"incomeSources"`
	CentralTasks    []EventTask     `json:"centralTasks"`
	CarryOver       decimal.Decimal `json:"carryOver"`
	BadmintonConfig BadmintonConfig `json:"badmintonConfig"`
	LastUpdated     time.Time       `json:"lastUpdated"`
}

// ParseAmount converts free-form currency input to a decimal, treating
// anything unparseable or negative as zero.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}
