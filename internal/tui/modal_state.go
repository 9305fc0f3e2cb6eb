package tui

import (
	"github.com/akyairhashvil/clubkitty/internal/board"
	"github.com/akyairhashvil/clubkitty/internal/models"
	"github.com/akyairhashvil/clubkitty/internal/state"
)

type ModalType int

const (
	ModalNone ModalType = iota
	ModalTaskCreate
	ModalTaskEdit
	ModalTaskDelete
	ModalEventEdit
	ModalEventDelete
	ModalIncomeCreate
	ModalIncomeRename
	ModalIncomeDelete
	ModalCellEdit
	ModalCarryOver
	ModalSessionEdit
	ModalImport
	ModalAssist
	ModalTheme
)

type ModalState interface {
	Type() ModalType
}

type TaskCreateState struct {
	Owner state.Owner
	Field int
}

func (s *TaskCreateState) Type() ModalType { return ModalTaskCreate }

// TaskEditState stages all edits, checklist included, in a buffer that is
// only applied on confirm.
type TaskEditState struct {
	Owner      state.Owner
	TaskID     string
	Buffer     board.EditBuffer
	Field      int
	ItemCursor int
}

func (s *TaskEditState) Type() ModalType { return ModalTaskEdit }

type TaskDeleteState struct {
	Owner  state.Owner
	TaskID string
	Title  string
}

func (s *TaskDeleteState) Type() ModalType { return ModalTaskDelete }

// EventEditState doubles as the create modal when EventID is empty.
type EventEditState struct {
	EventID  string
	Field    int
	Month    models.MonthKey
	Category models.EventCategory
}

func (s *EventEditState) Type() ModalType { return ModalEventEdit }

type EventDeleteState struct {
	EventID string
	Name    string
}

func (s *EventDeleteState) Type() ModalType { return ModalEventDelete }

type IncomeCreateState struct{}

func (s *IncomeCreateState) Type() ModalType { return ModalIncomeCreate }

type IncomeRenameState struct {
	SourceID string
}

func (s *IncomeRenameState) Type() ModalType { return ModalIncomeRename }

type IncomeDeleteState struct {
	SourceID string
	Name     string
}

func (s *IncomeDeleteState) Type() ModalType { return ModalIncomeDelete }

type CellEditState struct {
	SourceID string
	Month    models.MonthKey
}

func (s *CellEditState) Type() ModalType { return ModalCellEdit }

type CarryOverState struct{}

func (s *CarryOverState) Type() ModalType { return ModalCarryOver }

// SessionEditState doubles as the create modal when SessionID is empty.
type SessionEditState struct {
	Month     models.MonthKey
	SessionID string
	Field     int
}

func (s *SessionEditState) Type() ModalType { return ModalSessionEdit }

type ImportState struct{}

func (s *ImportState) Type() ModalType { return ModalImport }

type AssistState struct{}

func (s *AssistState) Type() ModalType { return ModalAssist }

type ThemeState struct {
	Cursor int
}

func (s *ThemeState) Type() ModalType { return ModalTheme }

// ModalManager tracks the single open modal.
type ModalManager struct {
	current ModalState
}

func newModalManager() *ModalManager {
	return &ModalManager{}
}

func (m *ModalManager) ActiveModal() ModalType {
	if m.current == nil {
		return ModalNone
	}
	return m.current.Type()
}

func (m *ModalManager) IsOpen() bool {
	return m.current != nil
}

func (m *ModalManager) Current() ModalState {
	return m.current
}

func (m *ModalManager) Open(s ModalState) {
	m.current = s
}

func (m *ModalManager) Close() {
	m.current = nil
}

func (m *ModalManager) Is(t ModalType) bool {
	return m.current != nil && m.current.Type() == t
}

func (m *ModalManager) TaskCreateState() (*TaskCreateState, bool) {
	s, ok := m.current.(*TaskCreateState)
	return s, ok
}

func (m *ModalManager) TaskEditState() (*TaskEditState, bool) {
	s, ok := m.current.(*TaskEditState)
	return s, ok
}

func (m *ModalManager) TaskDeleteState() (*TaskDeleteState, bool) {
	s, ok := m.current.(*TaskDeleteState)
	return s, ok
}

func (m *ModalManager) EventEditState() (*EventEditState, bool) {
	s, ok := m.current.(*EventEditState)
	return s, ok
}

func (m *ModalManager) EventDeleteState() (*EventDeleteState, bool) {
	s, ok := m.current.(*EventDeleteState)
	return s, ok
}

func (m *ModalManager) IncomeRenameState() (*IncomeRenameState, bool) {
	s, ok := m.current.(*IncomeRenameState)
	return s, ok
}

func (m *ModalManager) IncomeDeleteState() (*IncomeDeleteState, bool) {
	s, ok := m.current.(*IncomeDeleteState)
	return s, ok
}

func (m *ModalManager) CellEditState() (*CellEditState, bool) {
	s, ok := m.current.(*CellEditState)
	return s, ok
}

func (m *ModalManager) SessionEditState() (*SessionEditState, bool) {
	s, ok := m.current.(*SessionEditState)
	return s, ok
}

func (m *ModalManager) ThemeState() (*ThemeState, bool) {
	s, ok := m.current.(*ThemeState)
	return s, ok
}
