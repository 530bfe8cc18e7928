// Package tui renders the menu-entry form as a terminal screen.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"christoffel-menu/config"
	"christoffel-menu/models"
	"christoffel-menu/services"
)

// SuccessMessage is flashed once after a dish is saved.
const SuccessMessage = "Dish added successfully!"

// focus positions, in tab order
const (
	focusName = iota
	focusDescription
	focusPrice
	focusCourse
	focusSave
	focusCount
)

// text inputs, indexed by focus position
var inputFields = [...]models.Field{models.FieldName, models.FieldDescription, models.FieldPrice}

// Model is the bubbletea model of the menu screen.
type Model struct {
	form   *services.MenuForm
	cfg    config.ScreenConfig
	logger *zap.Logger

	inputs    [len(inputFields)]textinput.Model
	courses   []models.Course
	courseIdx int // 0 is the placeholder
	focus     int
	flash     string

	styles Styles
}

// New creates a screen around form. A nil logger discards logs.
func New(form *services.MenuForm, cfg config.ScreenConfig, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := Model{
		form:    form,
		cfg:     cfg,
		logger:  logger,
		courses: models.Courses(),
		styles:  DefaultStyles(),
	}
	placeholders := [...]string{"Enter dish name", "Enter description", "Enter price"}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 200
		ti.Width = 40
		ti.SetValue(form.Value(inputFields[i]))
		m.inputs[i] = ti
	}
	if c, ok := models.CourseByName(form.Draft().Course); ok {
		m.courseIdx = c.ID
	}
	m.inputs[focusName].Focus()
	return m
}

// Form exposes the state the screen edits.
func (m Model) Form() *services.MenuForm { return m.form }

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInput(msg)
	}

	m.flash = ""
	switch key.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "down":
		return m, m.setFocus((m.focus + 1) % focusCount)
	case "shift+tab", "up":
		return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
	case "ctrl+s":
		m.submit()
		return m, nil
	case "enter":
		if m.focus == focusSave {
			m.submit()
			return m, nil
		}
		return m, m.setFocus(m.focus + 1)
	case "left", "right":
		if m.focus == focusCourse {
			step := 1
			if key.String() == "left" {
				step = len(m.courses)
			}
			m.selectCourse((m.courseIdx + step) % (len(m.courses) + 1))
			return m, nil
		}
	}
	return m.updateInput(msg)
}

// updateInput forwards msg to the focused text input and copies a changed
// value into the form.
func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.focus >= len(m.inputs) {
		return m, nil
	}
	var cmd tea.Cmd
	before := m.inputs[m.focus].Value()
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if v := m.inputs[m.focus].Value(); v != before {
		if err := m.form.Set(inputFields[m.focus], v); err != nil {
			m.logger.Error("set field", zap.Error(err))
		}
	}
	return m, cmd
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.focus = i
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == i {
			cmd = m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	return cmd
}

func (m *Model) selectCourse(idx int) {
	m.courseIdx = idx
	name := ""
	if idx > 0 {
		name = m.courses[idx-1].Name
	}
	m.form.SetCourse(name)
}

func (m *Model) submit() {
	entry, err := m.form.Submit()
	if err != nil {
		m.logger.Debug("dish rejected", zap.Error(err))
		return
	}
	m.logger.Info("dish added",
		zap.String("name", entry.Name),
		zap.String("course", entry.Course),
		zap.Float64("price", entry.Price),
		zap.Int("count", m.form.Count()))

	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.courseIdx = 0
	if m.cfg.Inline() {
		m.flash = SuccessMessage
	}
}

func (m Model) View() string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.Header.Render(m.cfg.Title))
	b.WriteString("\n\n")
	b.WriteString(s.Summary.Render(fmt.Sprintf("Total: %d", m.form.Count())))
	b.WriteString("\n")

	b.WriteString(s.SectionTitle.Render("Menu"))
	b.WriteString("\n")
	for _, e := range m.form.Entries() {
		b.WriteString(s.Entry.Render(e.Line(m.cfg.Currency)))
		b.WriteString("\n")
	}

	b.WriteString(s.SectionTitle.Render("Add Menu Item"))
	b.WriteString("\n")
	for i, f := range inputFields {
		b.WriteString(s.Label.Render(f.Label()))
		b.WriteString("\n")
		b.WriteString(m.boxStyle(i, f).Render(m.inputs[i].View()))
		b.WriteString("\n")
		b.WriteString(m.errorLine(f))
	}

	b.WriteString(s.Label.Render(models.FieldCourse.Label()))
	b.WriteString("\n")
	b.WriteString(m.boxStyle(focusCourse, models.FieldCourse).Render("‹ " + m.courseLabel() + " ›"))
	b.WriteString("\n")
	b.WriteString(m.errorLine(models.FieldCourse))

	button := s.Button
	if m.focus == focusSave {
		button = s.ButtonActive
	}
	b.WriteString("\n")
	b.WriteString(button.Render("SAVE"))
	b.WriteString("\n")

	if m.flash != "" {
		b.WriteString("\n")
		b.WriteString(s.Success.Render(m.flash))
		b.WriteString("\n")
	}
	b.WriteString(s.Help.Render("tab/↓ next • shift+tab/↑ back • ←/→ course • enter on SAVE or ctrl+s save • esc quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) courseLabel() string {
	if m.courseIdx == 0 {
		return models.CoursePlaceholder
	}
	return m.courses[m.courseIdx-1].Name
}

func (m Model) boxStyle(pos int, f models.Field) lipgloss.Style {
	switch {
	case m.cfg.Inline() && m.form.Error(f) != "":
		return m.styles.InputError
	case m.focus == pos:
		return m.styles.InputFocused
	}
	return m.styles.Input
}

func (m Model) errorLine(f models.Field) string {
	msg := m.form.Error(f)
	if msg == "" || !m.cfg.Inline() {
		return ""
	}
	return m.styles.ErrorText.Render(msg) + "\n"
}

// Run starts the screen on the terminal and blocks until the user quits.
func Run(form *services.MenuForm, cfg config.ScreenConfig, logger *zap.Logger) error {
	p := tea.NewProgram(New(form, cfg, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("menu screen: %w", err)
	}
	return nil
}
