package cli

import (
	"errors"
	"io"

	"github.com/askewbot/askew-trainer/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type waitDoneMsg struct{ err error }

// waitModel shows a spinner until work returns.
type waitModel struct {
	spinner spinner.Model
	label   string
	work    func() error
	done    bool
	err     error
}

func newWaitModel(label string, work func() error) waitModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = formatter.StyleGemini
	return waitModel{spinner: s, label: label, work: work}
}

func (m waitModel) Init() tea.Cmd {
	work := m.work
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return waitDoneMsg{err: work()}
	})
}

func (m waitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case waitDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m waitModel) View() string {
	if m.done {
		return ""
	}
	return "  " + m.spinner.View() + " " + formatter.Dim(m.label) + "\n"
}

var errWaitAborted = errors.New("wait ended before the request returned")

// runWithSpinner runs work while rendering a spinner to out. Keyboard input
// is not captured and signals keep their default behaviour, so Ctrl+C ends
// the process as usual.
func runWithSpinner(out io.Writer, label string, work func() error) error {
	p := tea.NewProgram(newWaitModel(label, work),
		tea.WithInput(nil),
		tea.WithOutput(out),
		tea.WithoutSignalHandler(),
	)
	final, err := p.Run()
	if err != nil {
		return err
	}
	m, ok := final.(waitModel)
	if !ok || !m.done {
		return errWaitAborted
	}
	return m.err
}
