package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/akyairhashvil/clubkitty/internal/config"
)

// InputState stores all text input models. One field set is shared across
// modals; openers are responsible for seeding and focusing.
type InputState struct {
	title       textinput.Model
	description textinput.Model
	assignee    textinput.Model
	amount      textinput.Model
	actual      textinput.Model
	name        textinput.Model
	note        textinput.Model
	courts      textinput.Model
	hours       textinput.Model
	checklist   textinput.Model
	path        textinput.Model
	assist      textinput.Model
}

func newInputState() *InputState {
	title := textinput.New()
	title.Placeholder = "Task title..."
	title.CharLimit = config.MaxTitleLength
	title.Width = 40

	desc := textinput.New()
	desc.Placeholder = "Description"
	desc.CharLimit = config.MaxDescriptionLength
	desc.Width = 50

	assignee := textinput.New()
	assignee.Placeholder = "Assignee"
	assignee.Width = 30

	amount := textinput.New()
	amount.Placeholder = "0.00"
	amount.Width = 14

	actual := textinput.New()
	actual.Placeholder = "Leave blank if not spent yet"
	actual.Width = 24

	courts := textinput.New()
	courts.Placeholder = "Courts"
	courts.Width = 8

	hours := textinput.New()
	hours.Placeholder = "Hours"
	hours.Width = 8

	name := textinput.New()
	name.Placeholder = "Name"
	name.CharLimit = config.MaxTitleLength
	name.Width = 40

	note := textinput.New()
	note.Placeholder = "Note"
	note.CharLimit = config.MaxNoteLength
	note.Width = 50

	checklist := textinput.New()
	checklist.Placeholder = "New checklist item"
	checklist.Width = 40

	path := textinput.New()
	path.Placeholder = "/path/to/export.json"
	path.Width = 50

	assist := textinput.New()
	assist.Placeholder = "Describe the expense in plain words..."
	assist.Width = 60

	return &InputState{
		title:       title,
		description: desc,
		assignee:    assignee,
		amount:      amount,
		actual:      actual,
		name:        name,
		note:        note,
		courts:      courts,
		hours:       hours,
		checklist:   checklist,
		path:        path,
		assist:      assist,
	}
}

// blurAll drops focus everywhere before a modal re-focuses one field.
func (in *InputState) blurAll() {
	in.title.Blur()
	in.description.Blur()
	in.assignee.Blur()
	in.amount.Blur()
	in.actual.Blur()
	in.name.Blur()
	in.note.Blur()
	in.courts.Blur()
	in.hours.Blur()
	in.checklist.Blur()
	in.path.Blur()
	in.assist.Blur()
}

// resetAll clears values so the next modal starts clean.
func (in *InputState) resetAll() {
	in.title.SetValue("")
	in.description.SetValue("")
	in.assignee.SetValue("")
	in.amount.SetValue("")
	in.actual.SetValue("")
	in.name.SetValue("")
	in.note.SetValue("")
	in.courts.SetValue("")
	in.hours.SetValue("")
	in.checklist.SetValue("")
	in.path.SetValue("")
	in.assist.SetValue("")
	in.blurAll()
}
