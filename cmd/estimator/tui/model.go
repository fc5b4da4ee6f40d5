// Package tui runs the estimator wizard in the terminal.
package tui

import (
	"fmt"
	"strings"

	"agency_estimator/internal/domain/entities"
	"agency_estimator/internal/domain/pricing"
	"agency_estimator/internal/domain/wizard"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

type Model struct {
	estimator *pricing.Estimator
	wiz       *wizard.Wizard
	list      list.Model
	err       error
	quitting  bool
	styles    styles
}

func New(estimator *pricing.Estimator) Model {
	s := defaultStyles()
	m := Model{
		estimator: estimator,
		wiz:       wizard.New(estimator.Catalog()),
		list:      newOptionList(s),
		styles:    s,
	}
	m.placeCursor()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Step() wizard.Step {
	return m.wiz.Step()
}

func (m Model) Selection() entities.Selection {
	return m.wiz.Selection()
}

func (m Model) Cursor() int {
	return m.list.Index()
}

// Err is the last rejected action, cleared by the next key press.
func (m Model) Err() error {
	return m.err
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.err = nil

	switch key.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case " ":
		if o, ok := m.list.SelectedItem().(option); ok && o.checkbox {
			m.err = m.wiz.ToggleFeature(o.id)
			m.refresh()
		}
	case "enter":
		m.err = m.choose()
		m.placeCursor()
	case "b":
		m.err = m.wiz.Back()
		m.placeCursor()
	case "r":
		m.err = m.wiz.Reset()
		m.placeCursor()
	case "c":
		m.err = m.wiz.SetCurrency(m.nextCurrency())
		m.refresh()
	default:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) choose() error {
	step := m.wiz.Step()
	if step == wizard.StepSelectFeatures {
		return m.wiz.Continue()
	}
	o, ok := m.list.SelectedItem().(option)
	if !ok {
		return nil
	}
	id := o.id
	switch step {
	case wizard.StepSelectService:
		return m.wiz.SelectService(id)
	case wizard.StepSelectComplexity:
		return m.wiz.SelectComplexity(entities.ComplexityTier(id))
	case wizard.StepSelectTimeline:
		return m.wiz.SelectTimeline(entities.TimelineOption(id))
	}
	return nil
}

// refresh reloads the list with the current step's options, keeping the cursor.
func (m *Model) refresh() {
	opts := m.options()
	items := make([]list.Item, 0, len(opts))
	for _, o := range opts {
		items = append(items, o)
	}
	m.list.SetItems(items)
	m.list.SetSize(72, max(len(items), 1))
}

// placeCursor points at the already chosen option of the new step, if any.
func (m *Model) placeCursor() {
	m.refresh()
	sel := m.wiz.Selection()
	var current string
	switch m.wiz.Step() {
	case wizard.StepSelectService:
		current = sel.ServiceID
	case wizard.StepSelectComplexity:
		current = string(sel.Complexity)
	case wizard.StepSelectTimeline:
		current = string(sel.Timeline)
	}
	m.list.Select(0)
	for i, item := range m.list.Items() {
		if item.(option).id == current {
			m.list.Select(i)
			return
		}
	}
}

func (m Model) nextCurrency() entities.Currency {
	currencies := m.estimator.Catalog().Currencies()
	current := m.wiz.Selection().Currency
	for i, c := range currencies {
		if c.Code == current {
			return currencies[(i+1)%len(currencies)].Code
		}
	}
	return m.estimator.Catalog().DefaultCurrency()
}

func (m Model) options() []option {
	catalog := m.estimator.Catalog()
	sel := m.wiz.Selection()
	var opts []option

	switch m.wiz.Step() {
	case wizard.StepSelectService:
		for _, s := range catalog.Services() {
			hint := ""
			if amount, ok := s.BasePrice[sel.Currency]; ok {
				if formatted, err := m.estimator.FormatCurrency(amount, sel.Currency); err == nil {
					hint = "from " + formatted
				}
			}
			opts = append(opts, option{id: s.ID, label: s.Name, hint: hint})
		}
	case wizard.StepSelectComplexity:
		svc, _ := catalog.Service(sel.ServiceID)
		for _, t := range catalog.Tiers() {
			opts = append(opts, option{
				id:    string(t.ID),
				label: t.Name,
				hint:  fmt.Sprintf("x%.1f", svc.ComplexityMultiplier[t.ID]),
			})
		}
	case wizard.StepSelectFeatures:
		svc, _ := catalog.Service(sel.ServiceID)
		for _, f := range svc.Features {
			hint := ""
			if formatted, err := m.estimator.FormatCurrency(f.Price[sel.Currency], sel.Currency); err == nil {
				hint = "+" + formatted
			}
			opts = append(opts, option{id: f.ID, label: f.Name, hint: hint, checkbox: true, checked: sel.HasFeature(f.ID)})
		}
	case wizard.StepSelectTimeline:
		for _, t := range catalog.Timelines() {
			opts = append(opts, option{id: string(t.ID), label: t.Name, hint: t.Description})
		}
	}
	return opts
}

var stepTitles = map[wizard.Step]string{
	wizard.StepSelectService:    "Which service do you need?",
	wizard.StepSelectComplexity: "How complex is the project?",
	wizard.StepSelectFeatures:   "Any add-ons?",
	wizard.StepSelectTimeline:   "When do you need it?",
	wizard.StepShowEstimate:     "Your estimate",
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	step := m.wiz.Step()
	sel := m.wiz.Selection()

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Project Estimator"))
	b.WriteString("  ")
	b.WriteString(m.styles.Step.Render(fmt.Sprintf("step %d/%d  %s", int(step), int(wizard.StepShowEstimate), sel.Currency)))
	b.WriteString("\n\n")
	b.WriteString(stepTitles[step])
	b.WriteString("\n\n")

	if step == wizard.StepShowEstimate {
		if summary, err := m.estimator.Summary(sel); err == nil {
			b.WriteString(m.styles.Summary.Render(summary))
		} else {
			b.WriteString(m.styles.Error.Render(err.Error()))
		}
		b.WriteString("\n")
	} else {
		b.WriteString(m.list.View())
		b.WriteString("\n")
	}

	if res, err := m.wiz.Estimate(m.estimator); err == nil && res.Ready {
		b.WriteString("\n")
		b.WriteString("Estimate: " + m.styles.Price.Render(res.FormattedRange))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString("\n" + m.styles.Error.Render(m.err.Error()) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(helpFor(step)))
	b.WriteString("\n")
	return b.String()
}

func helpFor(step wizard.Step) string {
	switch step {
	case wizard.StepSelectFeatures:
		return "j/k move  space toggle  enter continue  b back  c currency  q quit"
	case wizard.StepShowEstimate:
		return "b back  r start over  c currency  q quit"
	case wizard.StepSelectService:
		return "j/k move  enter select  c currency  q quit"
	default:
		return "j/k move  enter select  b back  c currency  q quit"
	}
}
