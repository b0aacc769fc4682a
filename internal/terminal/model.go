package terminal

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/atotto/clipboard"
	"github.com/sahilm/fuzzy"

	"github.com/shuriken-cli/tour/internal/ui/styles"
)

const (
	welcomeText = `Welcome to the Shuriken CLI playground. Type "help" to list commands.`
	clearedText = `Transcript cleared. Type "help" to list commands.`
	copiedText  = `Transcript copied to clipboard.`
)

// revealTickMsg drives the word-by-word reveal. The generation counter
// invalidates ticks from an abandoned reveal, so stale timers cannot write
// into a newer transcript line.
type revealTickMsg struct {
	gen int
}

// reveal is the in-flight word reveal for a single output line.
type reveal struct {
	line   int
	tokens []string
	next   int
	delay  time.Duration
}

// Model is the Bubble Tea model for the playground widget. All state lives
// here and is only mutated by Update; there is no shared mutable state.
type Model struct {
	script     *Script
	transcript *Transcript
	history    *History
	input      textinput.Model

	prompt        string
	delayOverride time.Duration // 0 = per-entry delay

	// At most one reveal is in flight; while processing is set, submissions
	// are ignored.
	processing bool
	rev        reveal
	gen        int

	width  int
	height int
	scroll int // lines scrolled up from the transcript tail

	quitting bool
	now      func() time.Time
}

// Option configures a Model.
type Option func(*Model)

// WithPrompt sets the prompt label shown in front of the input line.
func WithPrompt(prompt string) Option {
	return func(m *Model) { m.prompt = prompt }
}

// WithDelayOverride replaces every entry's reveal delay with a fixed one.
func WithDelayOverride(d time.Duration) Option {
	return func(m *Model) { m.delayOverride = d }
}

// WithClock sets the time source used for transcript timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// NewModel creates a playground model for the given script. The transcript
// starts with a single welcome line.
func NewModel(script *Script, opts ...Option) Model {
	ti := textinput.New()
	ti.Placeholder = `Type "help" and press enter`
	ti.Prompt = ""
	ti.CharLimit = 200
	ti.SetWidth(60)
	ti.Focus()

	m := Model{
		script:     script,
		transcript: NewTranscript(),
		history:    NewHistory(),
		input:      ti,
		prompt:     "shuriken",
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.transcript.Append(LineInfo, welcomeText, m.now())
	return m
}

// Transcript exposes the transcript for inspection.
func (m Model) Transcript() *Transcript {
	return m.transcript
}

// History exposes the command history for inspection.
func (m Model) History() *History {
	return m.history
}

// Processing reports whether a reveal is in flight.
func (m Model) Processing() bool {
	return m.processing
}

// InputValue returns the current content of the input buffer.
func (m Model) InputValue() string {
	return m.input.Value()
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(max(20, msg.Width-len(m.prompt)-6))
		return m, nil

	case revealTickMsg:
		return m.advanceReveal(msg)

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.submit()

		case "up":
			if text, ok := m.history.Prev(); ok {
				m.input.SetValue(text)
			}
			return m, nil

		case "down":
			if text, ok := m.history.Next(); ok {
				m.input.SetValue(text)
			} // inactive cursor: leave the buffer alone
			return m, nil

		case "tab":
			m.completeTrigger()
			return m, nil

		case "ctrl+y":
			m.copyTranscript()
			return m, nil

		case "pgup":
			m.scroll = min(m.scroll+3, m.maxScroll())
			return m, nil

		case "pgdown":
			m.scroll = max(m.scroll-3, 0)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit handles enter. The processing flag blocks submissions while a
// reveal is in flight; everything else is ignored until it completes.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.processing {
		return m, nil
	}
	raw := m.input.Value()
	if strings.TrimSpace(raw) == "" {
		return m, nil
	}

	m.history.Push(raw)
	m.input.SetValue("")
	m.scroll = 0

	// "clear" is handled before the table lookup.
	if strings.EqualFold(Normalize(raw), "clear") {
		m.transcript.Reset(clearedText, m.now())
		return m, nil
	}

	m.transcript.Append(LineInput, raw, m.now())

	entry, ok := m.script.Match(raw)
	if !ok {
		m.transcript.Append(LineError,
			fmt.Sprintf("command not found: %s. Type \"help\" to list available commands.", Normalize(raw)),
			m.now())
		return m, nil
	}

	line := m.transcript.Append(LineOutput, "", m.now())
	delay := entry.RevealDelay
	if m.delayOverride > 0 {
		delay = m.delayOverride
	}
	m.processing = true
	m.gen++
	m.rev = reveal{
		line:   line,
		tokens: strings.Split(entry.Output, " "),
		delay:  delay,
	}
	return m, m.tickCmd()
}

func (m Model) tickCmd() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.rev.delay, func(time.Time) tea.Msg {
		return revealTickMsg{gen: gen}
	})
}

// advanceReveal appends the next token to the in-flight output line and
// schedules the following tick until every token is shown.
func (m Model) advanceReveal(msg revealTickMsg) (tea.Model, tea.Cmd) {
	if !m.processing || msg.gen != m.gen {
		return m, nil
	}
	m.transcript.Extend(m.rev.line, m.rev.tokens[m.rev.next])
	m.rev.next++
	if m.rev.next < len(m.rev.tokens) {
		return m, m.tickCmd()
	}
	m.processing = false
	return m, nil
}

// completeTrigger replaces the input buffer with the best fuzzy match among
// the registered triggers.
func (m *Model) completeTrigger() {
	current := strings.TrimSpace(m.input.Value())
	if current == "" {
		return
	}
	matches := fuzzy.Find(current, m.script.Triggers())
	if len(matches) > 0 {
		m.input.SetValue(matches[0].Str)
	}
}

func (m *Model) copyTranscript() {
	if err := clipboard.WriteAll(m.transcript.String()); err != nil {
		m.transcript.Append(LineInfo, fmt.Sprintf("clipboard unavailable: %v", err), m.now())
		return
	}
	m.transcript.Append(LineInfo, copiedText, m.now())
}

// renderedLines flattens the transcript into styled display lines.
func (m Model) renderedLines() []string {
	var out []string
	for _, line := range m.transcript.Lines() {
		var rendered string
		switch line.Kind {
		case LineInput:
			rendered = styles.PromptStyle.Render(m.prompt+" ❯") + " " + styles.InputStyle.Render(line.Text)
		case LineOutput:
			rendered = styles.OutputStyle.Render(line.Text)
		case LineError:
			rendered = styles.ErrorStyle.Render(line.Text)
		case LineInfo:
			rendered = styles.InfoStyle.Render(line.Text)
		}
		out = append(out, strings.Split(rendered, "\n")...)
	}
	return out
}

// visibleHeight is the number of transcript lines that fit above the input
// line and footer.
func (m Model) visibleHeight() int {
	if m.height == 0 {
		return 0 // no size yet: show everything
	}
	return max(1, m.height-4)
}

func (m Model) maxScroll() int {
	visible := m.visibleHeight()
	if visible == 0 {
		return 0
	}
	return max(0, len(m.renderedLines())-visible)
}

func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Shuriken CLI playground"))
	b.WriteString("\n\n")

	lines := m.renderedLines()
	if visible := m.visibleHeight(); visible > 0 && len(lines) > visible {
		end := len(lines) - m.scroll
		start := max(0, end-visible)
		lines = lines[start:end]
	}
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\n")

	b.WriteString(styles.PromptStyle.Render(m.prompt + " ❯ "))
	b.WriteString(m.input.View())
	b.WriteString("\n")

	hint := "enter run · up/down history · tab complete · ctrl+y copy · esc quit"
	if m.processing {
		hint = "replaying output..."
	}
	b.WriteString(styles.HintStyle.Render(hint))

	return tea.NewView(b.String())
}
