package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"portfolio-backend/internal/admin"
	"portfolio-backend/internal/domain"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type mode int

const (
	modeList mode = iota
	modeForm
	modeConfirm
)

const statusTTL = 4 * time.Second

// Messages
type loadedMsg struct {
	section int
	err     error
}
type opDoneMsg struct{ err error }
type clearStatusMsg struct{}

var (
	accent      = lipgloss.Color("#8B5CF6")
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(0, 1)
	tabStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTab   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(accent).Padding(0, 1)
	cursorStyle = lipgloss.NewStyle().Foreground(accent).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(24)
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Padding(0, 1)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")).Padding(0, 1)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")).Padding(0, 1)
)

// Model is the admin dashboard: one tab per entity kind.
type Model struct {
	ctx      context.Context
	sections []section
	active   int
	cursor   int
	mode     mode
	inputs   []textinput.Model
	focus    int
	spinner  spinner.Model
	busy     bool
	localErr string
	width    int
}

// NewModel builds the dashboard over client. ctx bounds every request it sends.
func NewModel(ctx context.Context, client *admin.Client) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(accent)

	return Model{
		ctx: ctx,
		sections: []section{
			projectSection(admin.NewManager[domain.Project, domain.ProjectPatch](admin.Projects(client), "Project", admin.ProjectForm)),
			skillSection(admin.NewManager[domain.Skill, domain.SkillPatch](admin.Skills(client), "Skill", admin.SkillForm)),
			certificateSection(admin.NewManager[domain.Certificate, domain.CertificatePatch](admin.Certificates(client), "Certificate", admin.CertificateForm)),
		},
		spinner: s,
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	for i := range m.sections {
		cmds = append(cmds, m.load(i))
	}
	return tea.Batch(cmds...)
}

func (m Model) current() section {
	return m.sections[m.active]
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loadedMsg:
		return m, clearLater()

	case opDoneMsg:
		m.busy = false
		if msg.err == nil {
			m.mode = modeList
			m.clampCursor()
		} else if m.mode == modeConfirm {
			m.mode = modeList
		}
		return m, clearLater()

	case clearStatusMsg:
		if !m.busy {
			for _, s := range m.sections {
				s.ClearStatus()
			}
			m.localErr = ""
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.busy {
			return m, nil
		}
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sec := m.current()
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab", "right", "l":
		m.active = (m.active + 1) % len(m.sections)
		m.cursor = 0
	case "shift+tab", "left", "h":
		m.active = (m.active + len(m.sections) - 1) % len(m.sections)
		m.cursor = 0
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(sec.Rows())-1 {
			m.cursor++
		}
	case "r":
		return m, m.load(m.active)
	case "n":
		if err := sec.New(); err != nil {
			m.localErr = err.Error()
			return m, clearLater()
		}
		return m.openForm()
	case "e", "enter":
		id, ok := sec.IDAt(m.cursor)
		if !ok {
			return m, nil
		}
		if err := sec.Edit(id); err != nil {
			m.localErr = err.Error()
			return m, clearLater()
		}
		return m.openForm()
	case "d", "delete":
		id, ok := sec.IDAt(m.cursor)
		if !ok {
			return m, nil
		}
		if err := sec.RequestDelete(id); err != nil {
			m.localErr = err.Error()
			return m, clearLater()
		}
		m.mode = modeConfirm
	}
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sec := m.current()
	switch msg.String() {
	case "y", "Y":
		m.busy = true
		return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
			return opDoneMsg{err: sec.ConfirmDelete(m.ctx)}
		})
	case "n", "N", "esc":
		sec.CancelDelete()
		m.mode = modeList
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sec := m.current()
	switch msg.String() {
	case "esc":
		_ = sec.New()
		m.mode = modeList
		return m, nil
	case "tab", "down":
		m.setFocus(m.focus + 1)
		return m, nil
	case "shift+tab", "up":
		m.setFocus(m.focus - 1)
		return m, nil
	case "ctrl+s":
		return m.submit()
	case "enter":
		if m.focus == len(m.inputs)-1 {
			return m.submit()
		}
		m.setFocus(m.focus + 1)
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	sec := m.current()
	values := make([]string, len(m.inputs))
	for i, in := range m.inputs {
		values[i] = in.Value()
	}
	if err := sec.ApplyInputs(values); err != nil {
		m.localErr = err.Error()
		return m, clearLater()
	}

	m.busy = true
	m.localErr = ""
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		return opDoneMsg{err: sec.Submit(m.ctx)}
	})
}

func (m Model) openForm() (tea.Model, tea.Cmd) {
	sec := m.current()
	labels := sec.FieldLabels()
	values := sec.FormValues()

	m.inputs = make([]textinput.Model, len(labels))
	for i := range labels {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 2048
		in.Width = 48
		in.SetValue(values[i])
		m.inputs[i] = in
	}
	m.mode = modeForm
	m.setFocus(0)
	return m, textinput.Blink
}

func (m *Model) setFocus(i int) {
	if len(m.inputs) == 0 {
		return
	}
	i = (i + len(m.inputs)) % len(m.inputs)
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	m.focus = i
}

func (m *Model) clampCursor() {
	n := len(m.current().Rows())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) load(i int) tea.Cmd {
	sec := m.sections[i]
	return func() tea.Msg {
		return loadedMsg{section: i, err: sec.Load(m.ctx)}
	}
}

func clearLater() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m Model) View() string {
	sec := m.current()

	tabs := make([]string, len(m.sections))
	for i, s := range m.sections {
		if i == m.active {
			tabs[i] = activeTab.Render(s.Title())
		} else {
			tabs[i] = tabStyle.Render(s.Title())
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, titleStyle.Render("Portfolio admin"), lipgloss.JoinHorizontal(lipgloss.Top, tabs...))

	var body string
	switch m.mode {
	case modeForm:
		body = m.viewForm(sec)
	default:
		body = m.viewList(sec)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		body,
		"",
		m.viewStatus(sec),
		helpStyle.Render(m.help()),
	)
}

func (m Model) viewList(sec section) string {
	rows := sec.Rows()
	if len(rows) == 0 {
		return helpStyle.Render(fmt.Sprintf("No %s yet. Press n to add one.", strings.ToLower(sec.Title())))
	}

	var b strings.Builder
	pending := sec.PendingDelete()
	for i, row := range rows {
		prefix := "  "
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
		}
		b.WriteString(prefix + row + "\n")
		if id, _ := sec.IDAt(i); m.mode == modeConfirm && id == pending {
			b.WriteString(promptStyle.Render(fmt.Sprintf("  Delete #%d? This cannot be undone. [y/n]", id)) + "\n")
		}
	}
	return b.String()
}

func (m Model) viewForm(sec section) string {
	heading := "New " + strings.TrimSuffix(sec.Title(), "s")
	if id := sec.EditingID(); id != 0 {
		heading = fmt.Sprintf("Edit %s #%d", strings.TrimSuffix(sec.Title(), "s"), id)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(heading) + "\n")
	for i, label := range sec.FieldLabels() {
		prefix := "  "
		if i == m.focus {
			prefix = cursorStyle.Render("> ")
		}
		b.WriteString(prefix + labelStyle.Render(label) + m.inputs[i].View() + "\n")
	}
	return b.String()
}

func (m Model) viewStatus(sec section) string {
	switch {
	case m.busy:
		return fmt.Sprintf(" %s %s", m.spinner.View(), "Saving...")
	case m.localErr != "":
		return errorStyle.Render(m.localErr)
	case sec.Err() != nil:
		return errorStyle.Render(sec.Err().Error())
	case sec.Notice() != "":
		return noticeStyle.Render(sec.Notice())
	}
	return ""
}

func (m Model) help() string {
	switch m.mode {
	case modeForm:
		return "tab/shift+tab move • enter on last field or ctrl+s save • esc cancel"
	case modeConfirm:
		return "y confirm delete • n cancel"
	}
	return "←/→ switch • ↑/↓ select • n new • e edit • d delete • r reload • q quit"
}

// Run starts the dashboard in the terminal and blocks until it exits.
func Run(ctx context.Context, client *admin.Client) error {
	_, err := tea.NewProgram(NewModel(ctx, client), tea.WithAltScreen()).Run()
	return err
}
