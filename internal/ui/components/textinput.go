package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with MathQuest styling and a
// per-character filter.
type TextInput struct {
	Model textinput.Model

	// Accept filters typed characters; nil accepts everything.
	Accept func(r rune) bool

	submitted bool
	valid     bool
}

// NewTextInput creates a new focused text input.
func NewTextInput(placeholder string, charLimit int, accept func(rune) bool) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if charLimit > 0 {
		ti.CharLimit = charLimit
	}

	return TextInput{
		Model:  ti,
		Accept: accept,
	}
}

// NewAnswerInput creates an input for numeric guesses such as "-3" or "12.5".
func NewAnswerInput() TextInput {
	return NewTextInput("your answer", 24, AnswerRune)
}

// NewDateInput creates an input for YYYY-MM-DD date keys.
func NewDateInput(value string) TextInput {
	t := NewTextInput("YYYY-MM-DD", 10, DateRune)
	t.Model.SetValue(value)
	t.Model.CursorEnd()
	return t
}

// AnswerRune reports whether r can appear in a numeric guess.
func AnswerRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r == '.', r == '-', r == '+':
		return true
	}
	return false
}

// DateRune reports whether r can appear in a date key.
func DateRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == '-'
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && t.Accept != nil && kmsg.Text != "" {
		for _, r := range kmsg.Text {
			if !t.Accept(r) {
				return t, nil
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input with a mark after a submission.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.submitted {
		if t.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Submit marks the input as submitted with a validation result.
func (t *TextInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}

// Reset clears the value and the submission mark.
func (t *TextInput) Reset() {
	t.Model.SetValue("")
	t.submitted = false
	t.valid = false
}
