// Package tui provides the interactive terminal UI: a search input
// whose results update live as the user types. Keystrokes are routed
// through the engine's debounce controller, so only the most recent
// query within the settle window is resolved.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/canon-labs/scriptura-cli/internal/core/domain"
	"github.com/canon-labs/scriptura-cli/internal/core/ports/driving"
)

// resultsMsg delivers debounced suggestion results to the update loop.
type resultsMsg struct {
	query   string
	results []domain.ScoredResult
}

// Model is the root bubbletea model for the live search UI.
type Model struct {
	styles *Styles
	input  textinput.Model
	svc    driving.SearchService

	// resultsCh carries debounce callbacks into the update loop.
	// Sends are non-blocking; under a pathological burst a stale
	// update may be dropped, never a newer one queued behind it.
	resultsCh chan resultsMsg

	results  []domain.ScoredResult
	selected int
	width    int
	height   int
	ready    bool
}

// New creates the live search model over a search service.
func New(svc driving.SearchService) *Model {
	ti := textinput.New()
	ti.Placeholder = "Search books, chapters, categories, entities..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	return &Model{
		styles:    DefaultStyles(),
		input:     ti,
		svc:       svc,
		resultsCh: make(chan resultsMsg, 8),
	}
}

// Init starts the cursor blink and arms the results listener.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForResults())
}

// waitForResults returns a command that blocks until the next
// debounced result set arrives.
func (m *Model) waitForResults() tea.Cmd {
	return func() tea.Msg {
		return <-m.resultsCh
	}
}

// Update handles messages for the live search UI.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case resultsMsg:
		// Ignore results for anything but the current input; the user
		// kept typing after the debounce window settled.
		if msg.query == strings.TrimSpace(m.input.Value()) {
			m.results = msg.results
			if m.selected >= len(m.results) {
				m.selected = 0
			}
		}
		return m, m.waitForResults()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKeyMsg processes keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEsc:
		m.input.SetValue("")
		m.results = nil
		m.selected = 0
		return m, nil

	case tea.KeyUp:
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case tea.KeyDown:
		if m.selected < len(m.results)-1 {
			m.selected++
		}
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if query := m.input.Value(); query != before {
		m.scheduleSuggest(query)
	}
	return m, cmd
}

// scheduleSuggest routes a keystroke through the debounce controller.
func (m *Model) scheduleSuggest(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		m.results = nil
		m.selected = 0
		return
	}

	m.svc.SuggestDebounced(query, func(results []domain.ScoredResult) {
		select {
		case m.resultsCh <- resultsMsg{query: query, results: results}:
		default:
		}
	})
}

// View renders the live search UI.
func (m *Model) View() string {
	if !m.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, len(m.results)+4)
	sections = append(sections, m.styles.Title.Render("Scriptura"), "")
	sections = append(sections, m.input.View(), "")

	if len(m.results) == 0 && strings.TrimSpace(m.input.Value()) != "" {
		sections = append(sections, m.styles.Muted.Render("No results."))
	}

	for i := range m.results {
		item := m.results[i].Item
		line := fmt.Sprintf("%s  %s", item.Title, m.styles.Muted.Render(string(item.Type)))
		if i == m.selected {
			line = m.styles.Selected.Render("> " + line)
		} else {
			line = m.styles.Normal.Render("  " + line)
		}
		sections = append(sections, line)
	}

	sections = append(sections, "",
		m.styles.Status.Render("↑/↓ navigate · esc clear · ctrl+c quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Results returns the currently displayed results.
func (m *Model) Results() []domain.ScoredResult {
	return m.results
}

// SelectedResult returns the highlighted result, if any.
func (m *Model) SelectedResult() *domain.ScoredResult {
	if m.selected < 0 || m.selected >= len(m.results) {
		return nil
	}
	return &m.results[m.selected]
}

// Query returns the current input value.
func (m *Model) Query() string {
	return m.input.Value()
}

// SetQuery sets the input value.
func (m *Model) SetQuery(query string) {
	m.input.SetValue(query)
}
