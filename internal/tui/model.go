package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gamedo/internal/game"
	"gamedo/internal/storage"
	"gamedo/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *game.Service

	width  int
	height int

	progress *storage.Progress
	tasks    []storage.Task

	selected int
	lastLog  string
	loading  bool
	err      error
}

type loadedMsg struct {
	progress *storage.Progress
	tasks    []storage.Task
	err      error
}

type completedMsg struct {
	id  string
	res *game.TransitionResult
	err error
}

type undoneMsg struct {
	id  string
	err error
}

func newBoardModel(ctx context.Context, svc *game.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		p, err := m.svc.Progress(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		tasks, err := m.svc.ListTasks(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{progress: p, tasks: tasks}
	}
}

func (m boardModel) completeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteTask(m.ctx, id)
		return completedMsg{id: id, res: res, err: err}
	}
}

func (m boardModel) undoCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return undoneMsg{id: id, err: m.svc.UndoTask(m.ctx, id)}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.progress = msg.progress
		m.tasks = msg.tasks
		if m.selected >= len(m.tasks) {
			m.selected = len(m.tasks) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil

	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = transitionLog(msg.res)
		return m, m.loadCmd()

	case undoneMsg:
		if msg.err != nil {
			m.lastLog = "Undo failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = "Completion reverted."
		return m, m.loadCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.tasks)-1 {
				m.selected++
			}
			return m, nil
		case "enter", " ":
			if t := m.selectedTask(); t != nil && !t.Completed {
				return m, m.completeCmd(t.ID)
			}
			return m, nil
		case "u":
			if t := m.selectedTask(); t != nil && t.Completed {
				return m, m.undoCmd(t.ID)
			}
			return m, nil
		}
	}
	return m, nil
}

func (m boardModel) selectedTask() *storage.Task {
	if m.selected < 0 || m.selected >= len(m.tasks) {
		return nil
	}
	return &m.tasks[m.selected]
}

func transitionLog(res *game.TransitionResult) string {
	parts := []string{fmt.Sprintf("+%d XP", res.XPGained)}
	if res.LevelUp {
		parts = append(parts, fmt.Sprintf("%s → level %d", ui.BadgeLevelUp, res.NewLevel))
	}
	for _, a := range res.NewAchievements {
		parts = append(parts, fmt.Sprintf("%s %s unlocked", a.Icon, a.Title))
	}
	return strings.Join(parts, "  ")
}

func (m boardModel) View() string {
	if m.loading {
		return "Loading…"
	}
	if m.err != nil {
		return ui.Bad.Render(ui.IconError+" "+m.err.Error()) + "\n"
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")

	if len(m.tasks) == 0 {
		b.WriteString(ui.Muted.Render("No tasks yet. Add one with `gamedo add`.") + "\n")
	}
	for i := range m.tasks {
		b.WriteString(m.taskLine(i) + "\n")
	}

	b.WriteString("\n" + ui.Muted.Render(m.lastLog) + "\n")
	b.WriteString(ui.Muted.Render("↑/↓ move · enter complete · u undo · r refresh · q quit") + "\n")
	return b.String()
}

func (m boardModel) headerView() string {
	p := m.progress
	level := game.LevelForXP(p.TotalXP)
	floor := game.XPThresholdForLevel(level)
	span := game.XPThresholdForLevel(level+1) - floor

	avatar := "🎮"
	if a, ok := game.AvatarByID(p.Avatar); ok {
		avatar = a.Emoji
	}

	line := fmt.Sprintf("%s  Level %d  %s %d/%d XP  %s %d-day streak",
		avatar, level,
		ui.XPBar(p.TotalXP-floor, span, 20), p.TotalXP-floor, span,
		ui.IconFlame, p.CurrentStreak,
	)
	return ui.Panel.Render(line)
}

func (m boardModel) taskLine(i int) string {
	t := &m.tasks[i]

	check := "☐"
	title := t.Title
	if t.Completed {
		check = ui.Good.Render("☑")
		title = ui.Muted.Render(title)
	}
	line := fmt.Sprintf("%s %s  %s %s", check, title, ui.PriorityText(t.Priority), ui.Muted.Render(fmt.Sprintf("(%d pts)", t.Points)))
	if t.Category != "" {
		line += " " + ui.Muted.Render("#"+t.Category)
	}
	if i == m.selected {
		return ui.SelectedRow.Render("> ") + line
	}
	return "  " + line
}
