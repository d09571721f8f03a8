// Package app owns the root Bubble Tea model. It holds the orchestrator
// state, keeps exactly one screen live, and translates nav messages from
// screens into flow transitions.
package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"somabuddy/internal/content"
	"somabuddy/internal/flow"
	"somabuddy/internal/i18n"
	"somabuddy/internal/nav"
	"somabuddy/internal/progress"
	"somabuddy/internal/screen"
	"somabuddy/internal/screens/library"
	"somabuddy/internal/screens/login"
	"somabuddy/internal/screens/parentdash"
	"somabuddy/internal/screens/progressview"
	"somabuddy/internal/screens/reading"
	"somabuddy/internal/screens/roleselect"
	"somabuddy/internal/screens/teacherdash"
	"somabuddy/internal/screens/welcome"
	"somabuddy/internal/store"
	"somabuddy/internal/ui/layout"
	"somabuddy/internal/ui/theme"
)

const toastDuration = 3 * time.Second

// toastExpiredMsg clears the toast shown for a given sequence number.
// A stale sequence number means a newer toast replaced it already.
type toastExpiredMsg struct {
	seq int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	state   *flow.State
	stories *content.Library
	active  screen.Screen

	width  int
	height int

	toast    flow.Notification
	toastSeq int
}

// newAppModel builds the root model on the welcome screen.
func newAppModel(seed *store.Memory) AppModel {
	state := flow.NewState(seed)
	m := AppModel{
		state:   state,
		stories: content.NewLibrary(seed.Stories()),
	}
	m.active = m.buildScreen()
	return m
}

func (m AppModel) Init() tea.Cmd {
	return m.active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = flow.Notification{}
		}
		return m, nil

	case nav.GetStartedMsg:
		m.state.GetStarted()
		return m.swap(flow.Notification{})

	case nav.RoleChosenMsg:
		note := m.state.SelectRole(msg.Role)
		return m.swap(note)

	case nav.LoginSubmittedMsg:
		note := m.state.LoginStudent(msg.Student)
		return m.swap(note)

	case nav.StoryChosenMsg:
		m.state.SelectStory(msg.Story)
		return m.swap(flow.Notification{})

	case nav.SessionFinishedMsg:
		note, ok := m.state.CompleteSession(msg.Accuracy, msg.PointsEarned)
		if !ok {
			return m, nil
		}
		return m.swap(note)

	case nav.ProgressRequestedMsg:
		if _, ok := m.state.ViewProgress(); !ok {
			return m, nil
		}
		return m.swap(flow.Notification{})

	case nav.LanguageToggledMsg:
		note := m.state.ChangeLanguage(msg.Lang)
		return m.swap(note)

	case nav.BackToRoleSelectMsg:
		m.state.BackToRoleSelect()
		return m.swap(flow.Notification{})

	case nav.BackToStudentLoginMsg:
		m.state.BackToStudentLogin()
		return m.swap(flow.Notification{})

	case nav.BackToLibraryMsg:
		m.state.BackToLibrary()
		return m.swap(flow.Notification{})
	}

	active, cmd := m.active.Update(msg)
	m.active = active
	return m, cmd
}

// swap rebuilds the live screen after a flow transition and schedules the
// toast, if the transition produced one.
func (m AppModel) swap(note flow.Notification) (tea.Model, tea.Cmd) {
	m.active = m.buildScreen()
	cmd := m.active.Init()

	if note.Message == "" {
		return m, cmd
	}
	m.toast = note
	m.toastSeq++
	seq := m.toastSeq
	expire := tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
	return m, tea.Batch(cmd, expire)
}

// buildScreen constructs the screen matching the flow state's live screen.
func (m AppModel) buildScreen() screen.Screen {
	lang := m.state.Language()

	switch m.state.Screen() {
	case flow.ScreenWelcome:
		return welcome.New(lang)

	case flow.ScreenRoleSelect:
		return roleselect.New(lang)

	case flow.ScreenStudentLogin:
		return login.New(m.state.Roster(), lang)

	case flow.ScreenStoryLibrary:
		student, _ := m.state.Student()
		return library.New(m.stories.Assigned(), student, lang)

	case flow.ScreenReadingSession:
		story, ok := m.state.Story()
		if !ok {
			student, _ := m.state.Student()
			return library.New(m.stories.Assigned(), student, lang)
		}
		return reading.New(story, lang)

	case flow.ScreenProgress:
		student, _ := m.state.Student()
		report := progress.BuildStudentReport(student, m.state.Sessions().ForStudent(student.ID))
		return progressview.New(report, lang)

	case flow.ScreenTeacherDashboard:
		teacher, _ := m.state.Teacher()
		report := progress.BuildClassReport(teacher, m.state.Roster().All(), m.state.Sessions(), m.state.ErrorPatterns())
		return teacherdash.New(report, lang)

	case flow.ScreenParentDashboard:
		parent, _ := m.state.Parent()
		report := progress.BuildFamilyReport(parent, m.state.Roster(), m.state.Sessions())
		return parentdash.New(report, lang)
	}

	return welcome.New(lang)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	points, streak := 0, 0
	if student, ok := m.state.Student(); ok {
		points = student.Points
		streak = student.StreakDays
	}
	header := layout.RenderHeader(m.active.Title(), points, streak, m.width)

	hints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: i18n.T(m.state.Language(), i18n.Quit)},
	}
	if hp, ok := m.active.(screen.KeyHintProvider); ok {
		hints = append(hp.KeyHints(), hints...)
	}
	footer := layout.RenderFooter(hints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.active.View(m.width, contentHeight)
	if m.toast.Message != "" {
		style := theme.ToastInfo
		if m.toast.Kind == flow.NoteSuccess {
			style = theme.ToastSuccess
		}
		toast := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, style.Render(m.toast.Message))
		content = lipgloss.JoinVertical(lipgloss.Left, toast, content)
	}

	frame := layout.RenderFrame(header, content, footer, m.width, m.height)
	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program over the given seed data.
func Run(seed *store.Memory) error {
	p := tea.NewProgram(newAppModel(seed))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
