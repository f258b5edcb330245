package state

import (
	"encoding/json"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/settings"
)

// formField is one editable input inside a tab form. Either area or
// input is set, never both.
type formField struct {
	name  string
	input *textinput.Model
	area  *textarea.Model
}

func (f *formField) value() string {
	if f.area != nil {
		return f.area.Value()
	}
	return f.input.Value()
}

func (f *formField) setValue(v string) {
	if f.area != nil {
		f.area.SetValue(v)
		return
	}
	f.input.SetValue(v)
}

func (f *formField) focus() tea.Cmd {
	if f.area != nil {
		return f.area.Focus()
	}
	return f.input.Focus()
}

func (f *formField) blur() {
	if f.area != nil {
		f.area.Blur()
		return
	}
	f.input.Blur()
}

func (f *formField) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.area != nil {
		*f.area, cmd = f.area.Update(msg)
		return cmd
	}
	*f.input, cmd = f.input.Update(msg)
	return cmd
}

// tabForm is the ordered field set of one tab.
type tabForm struct {
	fields  []*formField
	focused int
}

func newInput(placeholder string, limit, width int) *textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = width
	return &in
}

func newArea(placeholder string, limit int) *textarea.Model {
	area := textarea.New()
	area.Placeholder = placeholder
	area.CharLimit = limit
	area.ShowLineNumbers = false
	area.SetWidth(72)
	area.SetHeight(6)
	return &area
}

// newTabForm builds the form for tab with the default collection
// prefilled where the tab has a collection field.
func newTabForm(tab settings.Tab, defaultCollection string) *tabForm {
	form := &tabForm{}
	switch tab {
	case settings.TabSummarize:
		form.fields = []*formField{
			{name: "text", area: newArea("Paste the text to summarize…", 50000)},
			{name: "maxLength", input: newInput("500", 4, 12)},
			{name: "style", input: newInput("concise", 16, 20)},
		}
	case settings.TabDocuments:
		path := newInput("./paper.pdf", 512, 48)
		collection := newInput("default", 64, 24)
		collection.SetValue(defaultCollection)
		form.fields = []*formField{
			{name: "filePath", input: path},
			{name: "collectionName", input: collection},
		}
	case settings.TabAsk:
		question := newInput("What does the paper conclude?", 1024, 64)
		collection := newInput("default", 64, 24)
		collection.SetValue(defaultCollection)
		form.fields = []*formField{
			{name: "question", input: question},
			{name: "collectionName", input: collection},
		}
	case settings.TabLearningPath:
		form.fields = []*formField{
			{name: "goal", input: newInput("Become a backend engineer", 256, 64)},
			{name: "experience", input: newInput("beginner", 16, 20)},
			{name: "timeCommitment", input: newInput("10 hours/week", 64, 24)},
			{name: "learningStyle", input: newInput("mixed", 16, 20)},
		}
	}
	return form
}

// focusedField returns the name of the field holding focus, or "".
func (f *tabForm) focusedField() string {
	if len(f.fields) == 0 {
		return ""
	}
	return f.fields[f.focused].name
}

// focusedIsArea reports whether focus is on a multi-line text area.
func (f *tabForm) focusedIsArea() bool {
	if len(f.fields) == 0 {
		return false
	}
	return f.fields[f.focused].area != nil
}

// focusFirst puts focus on the first field.
func (f *tabForm) focusFirst() tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	f.focused = 0
	for i, field := range f.fields {
		if i != 0 {
			field.blur()
		}
	}
	return f.fields[0].focus()
}

// cycleFocus moves focus by delta, wrapping around the field list.
func (f *tabForm) cycleFocus(delta int) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	f.fields[f.focused].blur()
	f.focused = (f.focused + delta + len(f.fields)) % len(f.fields)
	return f.fields[f.focused].focus()
}

// update forwards msg to the focused field.
func (f *tabForm) update(msg tea.Msg) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	return f.fields[f.focused].update(msg)
}

// values snapshots every field for validation and submission.
func (f *tabForm) values() map[string]string {
	out := make(map[string]string, len(f.fields))
	for _, field := range f.fields {
		out[field.name] = strings.TrimSpace(field.value())
	}
	return out
}

// setValues restores fields from a saved snapshot. Unknown keys are
// ignored.
func (f *tabForm) setValues(values map[string]string) {
	for _, field := range f.fields {
		if v, ok := values[field.name]; ok {
			field.setValue(v)
		}
	}
}

// marshal encodes the form for the draft store.
func (f *tabForm) marshal() (string, error) {
	data, err := json.Marshal(f.values())
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// unmarshal restores the form from a draft snapshot. Malformed drafts
// are reported so the caller can discard them.
func (f *tabForm) unmarshal(data string) error {
	var values map[string]string
	if err := json.Unmarshal([]byte(data), &values); err != nil {
		return err
	}
	f.setValues(values)
	return nil
}

// reset clears every field.
func (f *tabForm) reset() {
	for _, field := range f.fields {
		field.setValue("")
	}
}
