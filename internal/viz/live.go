package viz

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/sortwiz/internal/audio"
	"github.com/san-kum/sortwiz/internal/experiment"
	"github.com/san-kum/sortwiz/internal/layout"
	"github.com/san-kum/sortwiz/internal/session"
	"github.com/san-kum/sortwiz/internal/stepper"
)

const (
	maxSpeed   = 64
	panelWidth = 34
	headerRows = 5
	footerRows = 2
	maxHistory = 4096
)

type TickMsg time.Time

type Options struct {
	FPS   int
	Speed int
	Theme string
	// Sound is optional; a nil Sonifier keeps the visualiser silent.
	Sound *audio.Sonifier
}

// Model is the Bubble Tea model of the visualiser. It owns no sorting state
// of its own: every key press is forwarded to the session and every frame
// is rendered from a session snapshot.
type Model struct {
	sess     *session.Session
	registry *experiment.Registry
	sound    *audio.Sonifier
	theme    Theme

	fps   int
	speed int

	width, height int
	canvas        *Canvas

	history  []float64
	status   string
	frame    int
	showHelp bool
	quitting bool
}

func NewModel(sess *session.Session, opts Options) Model {
	fps := opts.FPS
	if fps <= 0 {
		fps = 60
	}
	m := Model{
		sess:     sess,
		registry: experiment.NewRegistry(),
		sound:    opts.Sound,
		theme:    GetTheme(opts.Theme),
		fps:      fps,
		speed:    min(max(opts.Speed, 1), maxSpeed),
		width:    120,
		height:   40,
	}
	m.canvas = NewCanvas(m.canvasSize())
	m.resetHistory()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.canvas = NewCanvas(m.canvasSize())
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		if m.quitting {
			return m, nil
		}
		m.frame++
		m.step(m.speed)
		return m, m.tick()
	}
	return m, nil
}

// step advances the session by up to n steps and records the inversion count.
func (m *Model) step(n int) {
	events := m.sess.Tick(n)
	if len(events) == 0 {
		return
	}
	if m.sound != nil {
		m.sound.Play(events[len(events)-1], m.sess.Values())
	}
	m.history = append(m.history, m.sess.Metrics()["inversions"])
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
}

func (m *Model) resetHistory() {
	m.history = []float64{m.sess.Metrics()["inversions"]}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var err error
	key := msg.String()

	switch key {
	case "q", "ctrl+c", "esc":
		m.sess.Cancel()
		m.quitting = true
		return m, tea.Quit

	case "r":
		err = m.sess.Reset()
		if err == nil {
			m.resetHistory()
			if m.sound != nil {
				l := m.sess.Layout()
				m.sound.SetRange(l.Min, l.Max)
			}
		}

	case " ":
		prev := m.sess.State()
		err = m.sess.Toggle()
		if err == nil && prev != stepper.Running && prev != stepper.Paused {
			m.resetHistory()
		}

	case "enter":
		if m.sess.State() == stepper.Paused {
			err = m.sess.Resume()
		}

	case "a":
		err = m.sess.SetDirection(stepper.Ascending)
	case "d":
		err = m.sess.SetDirection(stepper.Descending)

	case "i", "b", "s", "h":
		if info, ok := m.registry.ByKey(rune(key[0])); ok {
			err = m.sess.SetAlgorithm(info.Algorithm)
		}

	case "t":
		m.theme = NextTheme(m.theme)

	case "+", "=":
		m.speed = min(m.speed*2, maxSpeed)
	case "-", "_":
		m.speed = max(m.speed/2, 1)

	case "?":
		m.showHelp = !m.showHelp

	default:
		return m, nil
	}

	if err != nil {
		slog.Debug("key rejected", "key", key, "error", err)
		m.status = err.Error()
	} else {
		m.status = ""
	}
	return m, nil
}

func (m Model) canvasSize() (int, int) {
	w := max(m.width-panelWidth-6, 10)
	h := max(m.height-headerRows-footerRows-2, 5)
	return w, h
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelp()
	}

	f := m.sess.Frame()
	info := m.registry.Lookup(f.Algorithm)

	m.canvas.Draw(f.Layout, f.Bars, func(i int) layout.Tint {
		return layout.TintOf(i, f.Event)
	})

	var b strings.Builder
	b.WriteString(m.renderHeader(f, info))
	b.WriteString("\n")

	bars := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Muted).
		Render(strings.TrimSuffix(m.canvas.Render(m.theme), "\n"))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, bars, " ", m.renderStats(f)))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader(f session.Frame, info experiment.Info) string {
	title := fmt.Sprintf("%s - %s", f.Algorithm, f.Direction)
	var b strings.Builder
	b.WriteString(GradientText(title, m.theme.Primary, m.theme.Secondary))
	b.WriteString("  ")
	b.WriteString(StateBadge(f.State, m.frame))
	b.WriteString("\n")
	b.WriteString(KeyHint.Render("R - Reset | SPACE - Start/Pause | ENTER - Resume | A - Ascending | D - Descending"))
	b.WriteString("\n")
	b.WriteString(KeyHint.Render("I - Insertion Sort | B - Bubble Sort | S - Selection Sort | H - Heap Sort"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Text).Render(info.Complexity()))
	return b.String()
}

func (m Model) renderStats(f session.Frame) string {
	label := func(name string, value string) string {
		return MetricLabel.Render(fmt.Sprintf("%-11s", name)) + MetricValue.Render(value)
	}

	var b strings.Builder
	b.WriteString(label("elements", fmt.Sprintf("%d", len(f.Values))))
	b.WriteString("\n")
	b.WriteString(label("range", fmt.Sprintf("[%d, %d]", f.Layout.Min, f.Layout.Max)))
	b.WriteString("\n")
	b.WriteString(label("steps", fmt.Sprintf("%d", f.Steps)))
	b.WriteString("\n")
	b.WriteString(label("inversions", fmt.Sprintf("%.0f", f.Metrics["inversions"])))
	b.WriteString("\n")
	b.WriteString(label("speed", fmt.Sprintf("%dx", m.speed)))
	b.WriteString("\n")
	b.WriteString(label("theme", m.theme.Name))
	b.WriteString("\n\n")

	sorted := 1 - f.Metrics["disorder"]
	b.WriteString(MetricLabel.Render("sorted "))
	b.WriteString(ProgressBar(sorted, panelWidth-14))
	b.WriteString("\n")
	b.WriteString(Separator(panelWidth - 4))
	b.WriteString("\n")

	if len(m.history) > 1 {
		b.WriteString(asciigraph.Plot(m.history,
			asciigraph.Height(8),
			asciigraph.Width(panelWidth-12),
			asciigraph.Caption("inversions"),
		))
	} else {
		b.WriteString(Subtle.Render("press space to start"))
	}

	if f.RunID != "" {
		b.WriteString("\n")
		b.WriteString(Subtle.Render("run " + f.RunID[:8]))
	}

	return GlassPanel.
		BorderForeground(m.theme.Muted).
		Width(panelWidth).
		Render(b.String())
}

func (m Model) renderFooter() string {
	if m.status != "" {
		return ErrorText.Render(m.status)
	}
	return KeyHint.Render("+/- speed  t theme  ? help  q quit")
}

func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(GradientText("Keyboard Controls", m.theme.Primary, m.theme.Secondary))
	b.WriteString("\n\n")
	rows := [][2]string{
		{"SPACE", "start, pause or resume the sort"},
		{"ENTER", "resume a paused sort"},
		{"R", "reset with a new random sequence"},
		{"A / D", "ascending / descending"},
		{"I", "insertion sort"},
		{"B", "bubble sort"},
		{"S", "selection sort"},
		{"H", "heap sort"},
		{"+ / -", "double or halve steps per frame"},
		{"T", "cycle color theme"},
		{"?", "toggle this help"},
		{"Q", "quit"},
	}
	for _, r := range rows {
		b.WriteString(MetricValue.Render(fmt.Sprintf("  %-7s", r[0])))
		b.WriteString(MetricLabel.Render(r[1]))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(Subtle.Render("algorithm and direction can only change while no sort is in progress"))
	return GlassPanel.BorderForeground(m.theme.Primary).Render(b.String())
}

// Run starts the interactive visualiser and blocks until the user quits.
func Run(sess *session.Session, opts Options) error {
	p := tea.NewProgram(NewModel(sess, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
