// chat-cli is a terminal client for the chat proxy: pick a character, talk to
// it over the proxy's /chat endpoint, watch retries and errors as they happen.
package main

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/Kub1991/4sciana/internal/adapters/proxy"
	"github.com/Kub1991/4sciana/internal/app/session"
	"github.com/Kub1991/4sciana/internal/characters"
	"github.com/Kub1991/4sciana/internal/domain"
)

// ─────────────────────────────────────────────────────────────
// Wiring
// ─────────────────────────────────────────────────────────────

type appConfig struct {
	apiURL   string
	apiToken string
	shareURL string
}

func loadConfig() appConfig {
	return appConfig{
		apiURL:   getEnv("CHAT_API_URL", "http://localhost:8080"),
		apiToken: os.Getenv("CHAT_API_TOKEN"),
		shareURL: getEnv("CHAT_SHARE_URL", "https://4sciana.pl"),
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// uiBridge forwards controller change notifications into the running
// bubbletea program. The program does not exist yet when the model is built,
// so the pointer lands late.
type uiBridge struct {
	mu sync.Mutex
	p  *tea.Program
}

func (b *uiBridge) set(p *tea.Program) {
	b.mu.Lock()
	b.p = p
	b.mu.Unlock()
}

func (b *uiBridge) notify() {
	b.mu.Lock()
	p := b.p
	b.mu.Unlock()
	if p != nil {
		p.Send(sessionChangedMsg{})
	}
}

// ─────────────────────────────────────────────────────────────
// Messages and theme
// ─────────────────────────────────────────────────────────────

type sessionChangedMsg struct{}

type theme struct {
	header    lipgloss.Style
	user      lipgloss.Style
	assistant lipgloss.Style
	errText   lipgloss.Style
	status    lipgloss.Style
	hint      lipgloss.Style
	pickItem  lipgloss.Style
	pickFocus lipgloss.Style
}

func newTheme() theme {
	pink := lipgloss.Color("#ff71ce")
	blue := lipgloss.Color("#01cdfe")
	mint := lipgloss.Color("#05ffa1")
	muted := lipgloss.Color("#6c7086")

	return theme{
		header:    lipgloss.NewStyle().Foreground(pink).Bold(true),
		user:      lipgloss.NewStyle().Foreground(mint).Bold(true),
		assistant: lipgloss.NewStyle().Foreground(blue).Bold(true),
		errText:   lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5555")),
		status:    lipgloss.NewStyle().Foreground(muted).Italic(true),
		hint:      lipgloss.NewStyle().Foreground(muted),
		pickItem:  lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")),
		pickFocus: lipgloss.NewStyle().Foreground(pink).Bold(true),
	}
}

// ─────────────────────────────────────────────────────────────
// Model
// ─────────────────────────────────────────────────────────────

type phase int

const (
	phasePicker phase = iota
	phaseChat
)

type model struct {
	cfg     appConfig
	bridge  *uiBridge
	chat    domain.ChatService
	monitor *session.Monitor
	theme   theme

	phase   phase
	catalog []domain.Character
	cursor  int

	controller *session.Controller
	timeline   viewport.Model
	input      textinput.Model
	spinner    spinner.Model
	statusLine string

	width  int
	height int
}

func newModel(cfg appConfig, bridge *uiBridge) model {
	input := textinput.New()
	input.Prompt = "❯ "
	input.CharLimit = 2000
	input.Placeholder = "Napisz wiadomość..."

	sp := spinner.New()
	sp.Spinner = spinner.Points
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#05ffa1"))

	timeline := viewport.New(0, 0)
	timeline.MouseWheelEnabled = true

	return model{
		cfg:      cfg,
		bridge:   bridge,
		chat:     proxy.NewClient(cfg.apiURL, cfg.apiToken),
		monitor:  session.NewMonitor(domain.NetworkOnline),
		theme:    newTheme(),
		phase:    phasePicker,
		catalog:  characters.Catalog(),
		input:    input,
		spinner:  sp,
		timeline: timeline,
	}
}

func (m model) Init() tea.Cmd {
	return m.spinner.Tick
}

// ─────────────────────────────────────────────────────────────
// Update
// ─────────────────────────────────────────────────────────────

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.timeline.Width = msg.Width
		m.timeline.Height = maxInt(msg.Height-6, 3)
		m.input.Width = maxInt(msg.Width-4, 20)
		m.renderTimeline()

	case sessionChangedMsg:
		m.renderTimeline()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.closeController()
			return m, tea.Quit
		}
		switch m.phase {
		case phasePicker:
			return m.updatePicker(msg)
		case phaseChat:
			return m.updateChat(msg)
		}

	case tea.MouseMsg:
		if m.phase == phaseChat {
			var cmd tea.Cmd
			m.timeline, cmd = m.timeline.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.catalog)-1 {
			m.cursor++
		}
	case "enter":
		character := m.catalog[m.cursor]
		m.controller = session.NewController(m.chat, m.monitor, character,
			session.WithOnChange(m.bridge.notify),
		)
		m.phase = phaseChat
		m.statusLine = ""
		m.input.Focus()
		m.renderTimeline()
		return m, textinput.Blink
	}
	return m, nil
}

func (m model) updateChat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeController()
		m.controller = nil
		m.phase = phasePicker
		m.input.Blur()
		m.input.Reset()
		return m, nil

	case "enter":
		text := m.input.Value()
		m.input.Reset()
		ctrl := m.controller
		// Send blocks for the whole turn, so it runs as a command; the
		// controller pushes state back through the bridge.
		return m, func() tea.Msg {
			ctrl.Send(text)
			return nil
		}

	case "ctrl+r":
		ctrl := m.controller
		return m, func() tea.Msg {
			ctrl.RetryNow()
			return nil
		}

	case "ctrl+n":
		m.controller.NewConversation()
		return m, nil

	case "ctrl+o":
		// Network toggle, for exercising the offline guard by hand.
		if m.monitor.Status() == domain.NetworkOffline {
			m.monitor.SetStatus(domain.NetworkOnline)
			m.statusLine = "network: online"
		} else {
			m.monitor.SetStatus(domain.NetworkOffline)
			m.statusLine = "network: offline"
		}
		return m, nil

	case "ctrl+s":
		if snap := m.controller.Share(m.cfg.shareURL); snap != nil {
			m.statusLine = fmt.Sprintf("%s wyznał: %q · %s", snap.CharacterName, snap.Confession, snap.ChatLink)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) closeController() {
	if m.controller != nil {
		m.controller.Close()
	}
}

// ─────────────────────────────────────────────────────────────
// View
// ─────────────────────────────────────────────────────────────

func (m model) View() string {
	switch m.phase {
	case phaseChat:
		return m.viewChat()
	default:
		return m.viewPicker()
	}
}

func (m model) viewPicker() string {
	var b strings.Builder
	b.WriteString(m.theme.header.Render("4ściana · wybierz postać"))
	b.WriteString("\n\n")
	for i, c := range m.catalog {
		line := fmt.Sprintf("%s %s · %s", c.Avatar, c.Name, c.Source)
		if i == m.cursor {
			b.WriteString(m.theme.pickFocus.Render("▸ " + line))
		} else {
			b.WriteString(m.theme.pickItem.Render("  " + line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.theme.hint.Render("↑/↓ wybór · enter rozmowa · q wyjście"))
	return b.String()
}

func (m model) viewChat() string {
	state := m.controller.State()

	var b strings.Builder
	header := fmt.Sprintf("%s %s · %s", state.Character.Avatar, state.Character.Name, state.Character.Title)
	b.WriteString(m.theme.header.Render(header))
	b.WriteString("\n")
	b.WriteString(m.timeline.View())
	b.WriteString("\n")

	switch {
	case state.Error != "":
		b.WriteString(m.theme.errText.Render(state.Error))
		if state.Retrying {
			b.WriteString(m.theme.status.Render(fmt.Sprintf("  %s ponawiam (%d/3)...", m.spinner.View(), state.RetryCount+1)))
		} else if state.LastFailedMessage != "" {
			b.WriteString(m.theme.status.Render("  ctrl+r aby ponowić"))
		}
		b.WriteString("\n")
	case state.Composing:
		b.WriteString(m.theme.status.Render(m.spinner.View() + " " + state.Character.Name + " pisze..."))
		b.WriteString("\n")
	case m.statusLine != "":
		b.WriteString(m.theme.status.Render(m.statusLine))
		b.WriteString("\n")
	default:
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.theme.hint.Render("enter wyślij · ctrl+n nowa rozmowa · ctrl+s udostępnij · ctrl+o sieć · esc postacie"))
	return b.String()
}

func (m *model) renderTimeline() {
	if m.controller == nil {
		return
	}
	state := m.controller.State()

	var b strings.Builder
	for _, msg := range state.Messages {
		label := m.theme.assistant.Render(state.Character.Name)
		if msg.Author == domain.RoleUser {
			label = m.theme.user.Render("Ty")
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(msg.Text)
		b.WriteString("\n\n")
	}
	if state.SuggestionsVisible && len(state.Character.SuggestedQuestions) > 0 {
		b.WriteString(m.theme.hint.Render("Na początek możesz zapytać:"))
		b.WriteString("\n")
		for _, q := range state.Character.SuggestedQuestions {
			b.WriteString(m.theme.hint.Render("  · " + q))
			b.WriteString("\n")
		}
	}

	m.timeline.SetContent(b.String())
	m.timeline.GotoBottom()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func main() {
	_ = godotenv.Load()

	bridge := &uiBridge{}
	m := newModel(loadConfig(), bridge)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	bridge.set(p)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "chat-cli fatal error: %v\n", err)
		os.Exit(1)
	}
}
