package ui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"benchdoc/internal/benchmark"
)

// ErrInterrupted is returned when the operator aborts the run from the spinner.
var ErrInterrupted = errors.New("benchmark interrupted")

// runResult is sent to the model when the wrapped Runner returns.
type runResult struct {
	capture *benchmark.Capture
	err     error
}

type spinnerModel struct {
	spinner     spinner.Model
	title       string
	done        bool
	interrupted bool
	result      runResult
}

func newSpinnerModel(title string) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle
	return spinnerModel{spinner: s, title: title}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case runResult:
		m.done = true
		m.result = msg
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.interrupted = true
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done || m.interrupted {
		return ""
	}
	return fmt.Sprintf("%s %s\n", m.spinner.View(), m.title)
}

// SpinnerRunner shows a spinner while the wrapped Runner blocks.
type SpinnerRunner struct {
	Runner benchmark.Runner
	Title  string
	// Input and Output default to the terminal when nil.
	Input  io.Reader
	Output io.Writer
}

// Run runs the wrapped Runner and returns its result. Pressing ctrl+c cancels
// the benchmark process and returns ErrInterrupted.
func (s *SpinnerRunner) Run(ctx context.Context) (*benchmark.Capture, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var opts []tea.ProgramOption
	if s.Input != nil {
		opts = append(opts, tea.WithInput(s.Input))
	}
	if s.Output != nil {
		opts = append(opts, tea.WithOutput(s.Output))
	}
	p := tea.NewProgram(newSpinnerModel(s.Title), opts...)

	done := make(chan runResult, 1)
	go func() {
		capture, err := s.Runner.Run(ctx)
		res := runResult{capture: capture, err: err}
		done <- res
		p.Send(res)
	}()

	final, err := p.Run()
	if err != nil {
		// The display failed; the benchmark itself is still running.
		res := <-done
		return res.capture, res.err
	}

	m := final.(spinnerModel)
	if m.interrupted {
		cancel()
		<-done
		return nil, ErrInterrupted
	}
	if !m.done {
		res := <-done
		return res.capture, res.err
	}
	return m.result.capture, m.result.err
}
