package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"policyadvisor/internal/api"
	"policyadvisor/internal/chat"
	"policyadvisor/internal/models"
	"policyadvisor/internal/render"
)

// Animation tick message
type animationTickMsg time.Time

// Message types for the TUI
type (
	answerMsg struct {
		answer *api.Answer
	}
	failMsg struct {
		err error
	}
)

// AdvisorInterface defines the client operations needed by the TUI
type AdvisorInterface interface {
	Ask(ctx context.Context, question string) (*api.Answer, error)
	Endpoint() string
}

// Model represents the TUI state
type Model struct {
	client AdvisorInterface

	// Conversation state machine
	controller *chat.Controller

	// UI components
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	// State
	ready          bool
	animationFrame int // Frame counter for the typing indicator

	// Dimensions
	width  int
	height int
}

// NewChatModel creates a new chat TUI model
func NewChatModel(client AdvisorInterface) Model {
	ta := textarea.New()
	ta.Placeholder = "Ask a question about security policy..."
	ta.CharLimit = 4000
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.Focus()

	// Style the textarea
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(colorText)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(colorTextDim)
	ta.BlurredStyle = ta.FocusedStyle

	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = loadingStyle

	return Model{
		client:     client,
		controller: chat.NewController(),
		textarea:   ta,
		spinner:    s,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
	)
}

// animationTick returns a command that sends animation tick messages
func animationTick() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return animationTickMsg(t)
	})
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Calculate component heights
		headerHeight := 4 // Header panel with border
		inputHeight := 6  // Input panel with border
		statusHeight := 1 // Status bar
		padding := 2      // Extra spacing

		vpHeight := m.height - headerHeight - inputHeight - statusHeight - padding
		if vpHeight < 5 {
			vpHeight = 5
		}

		contentWidth := m.width - 4

		// Initialize viewport on first size message
		if !m.ready {
			m.viewport = viewport.New(contentWidth, vpHeight)
			m.textarea.SetWidth(contentWidth - 4)
			m.ready = true
		} else {
			m.viewport.Width = contentWidth
			m.viewport.Height = vpHeight
			m.textarea.SetWidth(contentWidth - 4)
		}
		m.updateViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			// A pending request cannot be aborted; Esc only quits when idle
			if !m.controller.InFlight() {
				return m, tea.Quit
			}

		case "enter":
			input := strings.TrimSpace(m.textarea.Value())
			if input == "exit" || input == "quit" || input == "/exit" || input == "/quit" {
				return m, tea.Quit
			}

			question, ok := m.controller.Submit(m.textarea.Value())
			if ok {
				m.textarea.Reset()
				m.animationFrame = 0
				m.updateViewport()
				m.viewport.GotoBottom()

				return m, tea.Batch(
					m.ask(question),
					m.spinner.Tick,
					animationTick(),
				)
			}
		}

	case answerMsg:
		m.controller.Resolve(msg.answer.Text, msg.answer.Source)
		m.updateViewport()
		m.viewport.GotoBottom()

	case failMsg:
		// Any failure becomes the fixed fallback message; nothing is retried
		m.controller.Fail()
		m.updateViewport()
		m.viewport.GotoBottom()

	case spinner.TickMsg:
		if m.controller.InFlight() {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case animationTickMsg:
		if m.controller.InFlight() {
			m.animationFrame++
			cmds = append(cmds, animationTick())
		}
	}

	// Update child components - only pass KeyMsg to textarea to prevent escape sequence leaks
	if !m.controller.InFlight() {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.textarea, cmd = m.textarea.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	var sections []string
	contentWidth := m.width - 4

	// Header
	headerParts := []string{
		titleStyle.Render("✦ Policy Advisor"),
		hintStyle.Render("  •  "),
		subtitleStyle.Render(m.client.Endpoint()),
	}
	headerContent := lipgloss.JoinHorizontal(lipgloss.Center, headerParts...)
	header := headerStyle.Width(contentWidth).Render(headerContent)
	sections = append(sections, header)

	// Messages area
	var messagesContent string
	if m.controller.Len() == 0 {
		messagesContent = m.renderWelcome()
	} else {
		messagesContent = m.viewport.View()
	}

	messagesPanel := messagesAreaStyle.
		Width(contentWidth).
		Height(m.viewport.Height).
		Render(messagesContent)
	sections = append(sections, messagesPanel)

	// Input area
	var inputContent string
	if m.controller.InFlight() {
		inputContent = m.renderTypingIndicator()
	} else {
		inputContent = lipgloss.JoinVertical(
			lipgloss.Left,
			inputLabelStyle.Render("You"),
			m.textarea.View(),
		)
	}

	inputPanel := inputPanelStyle.Width(contentWidth).Render(inputContent)
	sections = append(sections, inputPanel)

	// Status bar
	statusBar := m.renderStatusBar(contentWidth)
	sections = append(sections, statusBar)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderWelcome renders the welcome screen when no messages exist
func (m Model) renderWelcome() string {
	width := m.viewport.Width - 4
	height := m.viewport.Height

	icon := welcomeIconStyle.Width(width).Render("✦")
	title := welcomeTitleStyle.Width(width).Render("InfoSec Policy Advisor")
	subtitle := welcomeStyle.Width(width).Render("Ask a question about company policy or ISO/NIST standards")

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		"",
		icon,
		"",
		title,
		"",
		subtitle,
		"",
	)

	// Center vertically
	contentHeight := lipgloss.Height(content)
	topPadding := (height - contentHeight) / 2
	if topPadding < 0 {
		topPadding = 0
	}

	return strings.Repeat("\n", topPadding) + content
}

// renderTypingIndicator renders the animated indicator shown while a
// request is in flight
func (m Model) renderTypingIndicator() string {
	chars := []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}

	frame := m.animationFrame

	spinIdx := frame % len(chars)
	spinColor := gradientColors[frame%len(gradientColors)]
	spin := lipgloss.NewStyle().Foreground(spinColor).Bold(true).Render(chars[spinIdx])

	// Animated dots
	dots := ""
	numDots := (frame / 3) % 4
	for i := 0; i < numDots; i++ {
		dotColor := gradientColors[(frame+i)%len(gradientColors)]
		dots += lipgloss.NewStyle().Foreground(dotColor).Render("●")
	}
	for i := numDots; i < 3; i++ {
		dots += lipgloss.NewStyle().Foreground(colorTextMute).Render("○")
	}

	text := lipgloss.NewStyle().Foreground(colorText).Render(" Advisor is typing ")

	return fmt.Sprintf("%s%s%s", spin, text, dots)
}

// renderStatusBar renders the bottom status bar with shortcuts
func (m Model) renderStatusBar(width int) string {
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Enter", "Send"},
		{"Esc", "Quit"},
		{"↑↓", "Scroll"},
	}

	var items []string
	for _, s := range shortcuts {
		item := lipgloss.JoinHorizontal(
			lipgloss.Center,
			statusKeyStyle.Render(s.key),
			statusDescStyle.Render(" "+s.desc),
		)
		items = append(items, item)
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(items, "  │  "))
	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(bar)
}

// ask creates a command that sends the question to the advisor
func (m Model) ask(question string) tea.Cmd {
	return func() tea.Msg {
		answer, err := m.client.Ask(context.Background(), question)
		if err != nil {
			return failMsg{err: err}
		}
		return answerMsg{answer: answer}
	}
}

// updateViewport refreshes the viewport content with styled messages
func (m *Model) updateViewport() {
	var content strings.Builder
	bubbleWidth := m.viewport.Width - 6

	for i, msg := range m.controller.Messages() {
		if i > 0 {
			content.WriteString("\n")
		}

		if msg.Sender == models.SenderUser {
			label := userLabelStyle.Render("⬤ " + msg.Sender.DisplayName())
			bubble := userBubbleStyle.Width(bubbleWidth).Render(msg.Text)
			content.WriteString(label + "\n" + bubble)
		} else {
			label := botLabelStyle.Render("✦ " + msg.Sender.DisplayName())
			content.WriteString(label + "\n")

			rendered, err := render.MarkdownWithWidth(msg.Text, bubbleWidth-4)
			if err != nil {
				rendered = render.InlineText(msg.Text)
			}
			// Trim trailing newlines from glamour
			rendered = strings.TrimRight(rendered, "\n")

			bubble := botBubbleStyle.Width(bubbleWidth).Render(rendered)
			content.WriteString(bubble)

			if msg.DisplayableSource() {
				content.WriteString("\n" + sourceLabelStyle.Render("Source: "+msg.Source))
			}
		}
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
}

// RunChat starts the chat TUI
func RunChat(client AdvisorInterface) error {
	m := NewChatModel(client)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
