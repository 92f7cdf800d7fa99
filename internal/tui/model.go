package tui

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vaultpass/pwgen-go/internal/clipboard"
	"github.com/vaultpass/pwgen-go/internal/crypto"
	"github.com/vaultpass/pwgen-go/internal/model"
	"github.com/vaultpass/pwgen-go/internal/service"
)

const frameInterval = 100 * time.Millisecond

type frameMsg time.Time

// copyResetMsg clears the copy status line; seq ties it to one copy action
// so an older tick cannot clear a newer message.
type copyResetMsg struct{ seq int }

// Model is the bubbletea model of the generator widget. All form state
// lives in the service.Widget; the model only keeps presentation state.
type Model struct {
	widget *service.Widget
	keys   keyMap
	help   help.Model
	slider progress.Model
	styles Styles

	particles []Particle
	animate   bool
	start     time.Time
	now       time.Time

	resetAfter time.Duration
	copySeq    int
	status     string
	statusErr  bool

	width  int
	height int
}

// Option customizes a Model.
type Option func(*Model)

// WithoutAnimation disables the particle background.
func WithoutAnimation() Option {
	return func(m *Model) { m.animate = false }
}

// WithParticles replaces the random particle layout.
func WithParticles(ps []Particle) Option {
	return func(m *Model) { m.particles = ps }
}

// New creates the widget model. resetAfter should match the copier's
// indicator interval.
func New(w *service.Widget, resetAfter time.Duration, opts ...Option) Model {
	if resetAfter <= 0 {
		resetAfter = clipboard.DefaultResetAfter
	}
	now := time.Now()
	m := Model{
		widget:     w,
		keys:       defaultKeyMap(),
		help:       help.New(),
		slider:     progress.New(progress.WithSolidFill(string(Indigo)), progress.WithoutPercentage(), progress.WithWidth(crypto.MaxLength+2)),
		styles:     DefaultStyles(),
		particles:  NewParticles(particleCount, rand.New(rand.NewPCG(uint64(now.UnixNano()), 0))),
		animate:    true,
		start:      now,
		now:        now,
		resetAfter: resetAfter,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m Model) frame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// Init starts the background animation.
func (m Model) Init() tea.Cmd {
	if !m.animate {
		return nil
	}
	return m.frame()
}

// Update handles key presses, resizes and timer messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width

	case frameMsg:
		m.now = time.Time(msg)
		return m, m.frame()

	case copyResetMsg:
		if msg.seq == m.copySeq {
			m.status = ""
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Shorter):
			m.apply(m.widget.SetLength(m.widget.Options().Length - 1))
		case key.Matches(msg, m.keys.Longer):
			m.apply(m.widget.SetLength(m.widget.Options().Length + 1))
		case key.Matches(msg, m.keys.Digits):
			m.apply(m.widget.ToggleDigits())
		case key.Matches(msg, m.keys.Symbols):
			m.apply(m.widget.ToggleSymbols())
		case key.Matches(msg, m.keys.Generate):
			m.apply(m.widget.Regenerate())
		case key.Matches(msg, m.keys.Copy):
			return m.copy()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	return m, nil
}

func (m *Model) apply(_ model.WidgetState, err error) {
	if err != nil {
		m.status, m.statusErr = err.Error(), true
		return
	}
	if m.statusErr {
		m.status, m.statusErr = "", false
	}
}

func (m Model) copy() (tea.Model, tea.Cmd) {
	m.copySeq++
	if _, err := m.widget.Copy(); err != nil {
		m.status, m.statusErr = "Copy failed: "+err.Error(), true
		return m, nil
	}

	m.status, m.statusErr = "Copied to clipboard", false
	seq := m.copySeq
	return m, tea.Tick(m.resetAfter, func(time.Time) tea.Msg { return copyResetMsg{seq: seq} })
}

// View renders the card, over the particle field when the terminal size is known.
func (m Model) View() string {
	card := m.styles.Card.Render(m.cardView())
	if !m.animate || m.width == 0 || m.height == 0 {
		return card
	}
	return m.overlay(Field(m.particles, m.now.Sub(m.start), m.width, m.height), card)
}

func (m Model) cardView() string {
	state := m.widget.State()
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Password Generator"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render("Create strong, random passwords"))
	b.WriteString("\n\n")

	button := m.styles.Copy.Render("Copy")
	if state.Copied {
		button = m.styles.Copied.Render("✓")
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.styles.Password.Render(state.Password), button))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Muted.Render("Strength: "))
	b.WriteString(m.styles.Strength[state.Strength].Render(string(state.Strength)))
	if state.Estimate.CrackTime != "" {
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("  (zxcvbn %d/4, cracked in %s)", state.Estimate.Score, state.Estimate.CrackTime)))
	}
	b.WriteString("\n\n")

	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("Length: %d", state.Options.Length)))
	b.WriteString("\n")
	b.WriteString(m.slider.ViewAs(sliderPercent(state.Options.Length)))
	b.WriteString("\n\n")

	b.WriteString(m.toggle(state.Options.Digits, "Numbers"))
	b.WriteString("   ")
	b.WriteString(m.toggle(state.Options.Symbols, "Special Chars"))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Button.Render("Generate Password"))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n")
		if m.statusErr {
			b.WriteString(m.styles.Error.Render(m.status))
		} else {
			b.WriteString(m.styles.Success.Render(m.status))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) toggle(on bool, label string) string {
	if on {
		return m.styles.ToggleOn.Render("[x]") + " " + m.styles.Muted.Render(label)
	}
	return m.styles.ToggleOff.Render("[ ]") + " " + m.styles.Muted.Render(label)
}

func sliderPercent(length int) float64 {
	return float64(length-crypto.MinLength) / float64(crypto.MaxLength-crypto.MinLength)
}

// overlay centers card on the particle field. A card larger than the field
// is returned alone.
func (m Model) overlay(field [][]rune, card string) string {
	lines := strings.Split(card, "\n")
	cardW := lipgloss.Width(card)
	if len(lines) > len(field) || len(field) == 0 || cardW > len(field[0]) {
		return card
	}

	top := (len(field) - len(lines)) / 2
	left := (len(field[0]) - cardW) / 2

	out := make([]string, len(field))
	for y, row := range field {
		i := y - top
		if i < 0 || i >= len(lines) {
			out[y] = m.styles.Particle.Render(string(row))
			continue
		}
		line := lines[i]
		pad := max(0, cardW-lipgloss.Width(line))
		out[y] = m.styles.Particle.Render(string(row[:left])) +
			line + strings.Repeat(" ", pad) +
			m.styles.Particle.Render(string(row[left+cardW:]))
	}
	return strings.Join(out, "\n")
}
