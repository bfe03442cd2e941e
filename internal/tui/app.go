// internal/tui/app.go
//
// Terminal UI over a live company roster. It uses bubbletea, which follows
// The Elm Architecture:
//
// 1. Model: the App below (company + list state)
// 2. Update: key presses dismiss staff or quit
// 3. View: lipgloss panels rendered from the current roster
//
// The flow is: User Input -> Message -> Update -> New Model -> View -> Screen

package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/roster/internal/employee"
	"github.com/kingrea/roster/internal/logbook"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	logTailLines  = 8
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B")).MarginBottom(1)
	presidentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F7B801"))
	detailStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#A0AEC0"))
	hintStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA")).MarginTop(1)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).MarginTop(1)
	boxStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#444444")).Padding(0, 1)
)

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithLogbook shows the tail of book in the log panel.
func WithLogbook(book *logbook.Logbook) AppOption {
	return func(a *App) {
		a.logbook = book
	}
}

// App is the main application model. In bubbletea, this holds ALL your state.
type App struct {
	company *employee.Company
	logbook *logbook.Logbook

	staffList list.Model
	statusMsg string

	width  int
	height int
}

// staffItem implements list.Item for one roster entry.
type staffItem struct {
	name     string
	division string
	salary   int
}

func (i staffItem) Title() string {
	if i.name == "" {
		return "(名前なし)"
	}
	return i.name
}

func (i staffItem) Description() string {
	division := i.division
	if division == "" {
		division = "所属なし"
	}
	return fmt.Sprintf("%s · %d円", division, i.salary)
}

func (i staffItem) FilterValue() string { return i.name }

// NewApp creates the roster UI for company.
func NewApp(company *employee.Company, opts ...AppOption) *App {
	staffList := list.New(nil, list.NewDefaultDelegate(), defaultWidth, defaultHeight)
	staffList.Title = "社員一覧"
	staffList.SetShowStatusBar(false)
	staffList.SetFilteringEnabled(false)
	app := &App{
		company:   company,
		staffList: staffList,
		statusMsg: "d → 社長が解雇    p → 解雇手続き    q → 終了",
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}
	app.refreshStaff()
	return app
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.staffList.SetSize(max(20, msg.Width-6), max(6, msg.Height-14))
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return a, tea.Quit
		case "d":
			return a, a.dismissSelected(false)
		case "p":
			return a, a.dismissSelected(true)
		}
	}

	var cmd tea.Cmd
	a.staffList, cmd = a.staffList.Update(msg)
	return a, cmd
}

// dismissSelected removes the selected staff member, through the company's
// dismissal procedure when viaCompany is set and through the president
// otherwise.
func (a *App) dismissSelected(viaCompany bool) tea.Cmd {
	item, ok := a.staffList.SelectedItem().(staffItem)
	if !ok {
		a.statusMsg = "解雇できる社員がいません"
		return nil
	}
	if viaCompany {
		a.company.PerformDismissalProcedure(item.name)
		a.statusMsg = fmt.Sprintf("%sさんの解雇手続きが完了しました（社員数 %d人）", item.name, a.company.Headcount())
	} else {
		a.company.President().Dismiss(item.name)
		a.statusMsg = fmt.Sprintf("%sが%sさんを解雇しました", a.company.President().Name(), item.name)
	}
	return a.refreshStaff()
}

func (a *App) refreshStaff() tea.Cmd {
	staff := a.company.Staffs().All()
	items := make([]list.Item, 0, len(staff))
	for _, s := range staff {
		items = append(items, staffItem{
			name:     s.Name(),
			division: s.Division(),
			salary:   s.Salary(),
		})
	}
	return a.staffList.SetItems(items)
}

// View renders the current state to a string.
func (a *App) View() string {
	width := a.width
	if width <= 0 {
		width = defaultWidth
	}
	header := headerStyle.Render("⬡ ROSTER")
	body := boxStyle.Width(max(20, width-2)).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			a.renderPresidentPanel(),
			"",
			a.staffList.View(),
		),
	)
	sections := []string{header, body}
	if logPanel := a.renderLogPanel(); logPanel != "" {
		sections = append(sections, logPanel)
	}
	sections = append(sections, footerStyle.Render(a.statusMsg))
	return strings.Join(sections, "\n")
}

func (a *App) renderPresidentPanel() string {
	president := a.company.President()
	lines := []string{
		presidentStyle.Render(fmt.Sprintf("社長: %s", president.Name())),
		detailStyle.Render(fmt.Sprintf("給料: %d円 · 社員数: %d人", president.Salary(), a.company.Headcount())),
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderLogPanel() string {
	if a.logbook == nil {
		return ""
	}
	lines, total := a.logbook.Tail(logTailLines)
	if len(lines) == 0 {
		return ""
	}
	fileName := filepath.Base(a.logbook.Path())
	if fileName == "." || fileName == "" {
		fileName = "log"
	}
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		Render(fmt.Sprintf("LOG · %s (%d)", fileName, total))
	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA")).
		Render(strings.Join(lines, "\n"))
	return boxStyle.Render(fmt.Sprintf("%s\n%s", head, body))
}
