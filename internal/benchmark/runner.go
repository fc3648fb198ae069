package benchmark

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Runner defines the interface for running the benchmark tool.
type Runner interface {
	Run(ctx context.Context) (*Capture, error)
}

// Capture holds what the benchmark process produced.
type Capture struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// ProcessError is returned when the benchmark tool exits with a non-zero status.
type ProcessError struct {
	ExitCode int
	Stderr   string
}

func (e *ProcessError) Error() string {
	msg := fmt.Sprintf("benchmark failed with exit status %d", e.ExitCode)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ":\n" + stderr
	}
	return msg
}

// BenchCommand is the fixed invocation. Colouring is disabled so the
// output stays machine-parseable.
var BenchCommand = []string{"cargo", "bench", "--", "--color", "never"}

// execCommand allows mocking in tests.
var execCommand = exec.CommandContext

// CargoRunner implements Runner by invoking cargo bench in Dir.
type CargoRunner struct {
	// Dir is the working directory of the process; empty means the current one.
	Dir string
}

func NewCargoRunner(dir string) *CargoRunner {
	return &CargoRunner{Dir: dir}
}

// Run blocks until the benchmark process exits. A non-zero exit status is
// reported as *ProcessError together with the capture.
func (r *CargoRunner) Run(ctx context.Context) (*Capture, error) {
	cmd := execCommand(ctx, BenchCommand[0], BenchCommand[1:]...)
	cmd.Dir = r.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	capture := &Capture{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			capture.ExitCode = exitErr.ExitCode()
			return capture, &ProcessError{ExitCode: capture.ExitCode, Stderr: capture.Stderr}
		}
		return nil, fmt.Errorf("failed to start %s: %w", strings.Join(BenchCommand, " "), err)
	}

	return capture, nil
}
