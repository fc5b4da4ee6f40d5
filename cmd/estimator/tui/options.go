package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// option adapts one choice of the current step to list.Item.
type option struct {
	id       string
	label    string
	hint     string
	checkbox bool
	checked  bool
}

func (o option) Title() string       { return o.label }
func (o option) Description() string { return o.hint }
func (o option) FilterValue() string { return o.label }

// optionDelegate draws one row per option: cursor, optional checkbox, label and hint.
type optionDelegate struct {
	styles styles
}

func (d optionDelegate) Height() int                             { return 1 }
func (d optionDelegate) Spacing() int                            { return 0 }
func (d optionDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d optionDelegate) Render(w io.Writer, l list.Model, index int, item list.Item) {
	o, ok := item.(option)
	if !ok {
		return
	}
	cursor := "  "
	if index == l.Index() {
		cursor = d.styles.Cursor.Render("> ")
	}
	label := o.Title()
	if o.checkbox {
		box := "[ ] "
		if o.checked {
			box = d.styles.Selected.Render("[x] ")
		}
		label = box + label
	}
	line := d.styles.Item.Render(label)
	if hint := o.Description(); hint != "" {
		line += "  " + d.styles.Step.Render(hint)
	}
	fmt.Fprint(w, cursor+line)
}

func newOptionList(s styles) list.Model {
	l := list.New(nil, optionDelegate{styles: s}, 72, 1)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	return l
}
