package practice

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"qahistory/internal/history"
	"qahistory/internal/question"
	"qahistory/internal/scoring"
	"qahistory/internal/ui/transcript"
)

// Scorer grades an answer against an ideal answer.
type Scorer interface {
	Score(ctx context.Context, question, ideal, actual string) (scoring.Evaluation, error)
}

// Appender appends graded records to the history.
type Appender interface {
	Append(question, answer string, evaluation any) (history.Entry, error)
}

// Source lists the history nodes to display.
type Source interface {
	Children() []history.Node
}

type stage int

const (
	stageQuestion stage = iota
	stageIdeal
	stageAnswer
	stageScoring
)

var prompts = map[stage]string{
	stageQuestion: "Question",
	stageIdeal:    "Ideal answer (optional)",
	stageAnswer:   "Your answer",
	stageScoring:  "Scoring",
}

// scoredMsg reports the outcome of grading and appending one answer.
type scoredMsg struct {
	entry history.Entry
	err   error
}

// Model is the interactive practice session.
type Model struct {
	ctx      context.Context
	scorer   Scorer
	appender Appender
	source   Source
	noColor  bool

	queue    []question.Question
	input    textinput.Model
	stage    stage
	question string
	ideal    string
	lastErr  error
	quitting bool
}

// New builds a session that asks for a question, an ideal answer and an answer,
// then grades and appends the result.
func New(ctx context.Context, scorer Scorer, appender Appender, source Source, noColor bool) Model {
	input := textinput.New()
	input.Placeholder = "Type and press Enter"
	input.Focus()
	return Model{
		ctx:      ctx,
		scorer:   scorer,
		appender: appender,
		source:   source,
		noColor:  noColor,
		input:    input,
		stage:    stageQuestion,
	}
}

// WithQuestions queues bank questions. Each one skips the question and ideal
// prompts; manual entry resumes once the queue is empty.
func (m Model) WithQuestions(questions []question.Question) Model {
	m.queue = append([]question.Question(nil), questions...)
	return m.advance()
}

func (m Model) advance() Model {
	if m.stage != stageQuestion || len(m.queue) == 0 {
		return m
	}
	next := m.queue[0]
	m.queue = m.queue[1:]
	m.question, m.ideal = next.Prompt, next.IdealAnswer
	m.stage = stageAnswer
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses and scoring results.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	case scoredMsg:
		m.lastErr = msg.err
		m.question, m.ideal = "", ""
		m.stage = stageQuestion
		m.input.Reset()
		return m.advance(), nil
	}
	if m.stage == stageScoring {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())
	switch m.stage {
	case stageQuestion:
		if value == "" {
			return m, nil
		}
		m.question = value
		m.lastErr = nil
		m.stage = stageIdeal
	case stageIdeal:
		m.ideal = value
		m.stage = stageAnswer
	case stageAnswer:
		m.stage = stageScoring
		m.input.Reset()
		return m, m.scoreCmd(m.question, m.ideal, value)
	default:
		return m, nil
	}
	m.input.Reset()
	return m, nil
}

func (m Model) scoreCmd(question, ideal, answer string) tea.Cmd {
	ctx, scorer, appender := m.ctx, m.scorer, m.appender
	return func() tea.Msg {
		evaluation, err := scorer.Score(ctx, question, ideal, answer)
		if err != nil {
			return scoredMsg{err: err}
		}
		entry, err := appender.Append(question, answer, evaluation)
		return scoredMsg{entry: entry, err: err}
	}
}

// View renders the transcript followed by the active prompt.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	if m.source != nil {
		if nodes := m.source.Children(); len(nodes) > 0 {
			b.WriteString(transcript.RenderList(nodes, m.noColor))
			b.WriteString("\n\n")
		}
	}
	if m.question != "" {
		b.WriteString("Q: " + m.question + "\n")
	}
	label := prompts[m.stage] + ":"
	if !m.noColor {
		label = lipgloss.NewStyle().Bold(true).Render(label)
	}
	b.WriteString(label + " ")
	if m.stage == stageScoring {
		b.WriteString("…")
	} else {
		b.WriteString(m.input.View())
	}
	if m.lastErr != nil {
		b.WriteString("\nError: " + m.lastErr.Error())
	}
	b.WriteString("\n(esc to quit)\n")
	return b.String()
}

// Run drives the session until the user quits or ctx is cancelled.
func Run(ctx context.Context, model Model, in io.Reader, out io.Writer) error {
	program := tea.NewProgram(model, tea.WithContext(ctx), tea.WithInput(in), tea.WithOutput(out))
	_, err := program.Run()
	return err
}
