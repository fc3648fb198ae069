package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"benchdoc/internal/benchmark"
	"benchdoc/internal/config"
	"benchdoc/internal/notify"
)

const sampleOutput = `   Compiling zabi v0.1.0
Running benches/abi.rs
Encoding/encode_uint/zabi-rs     time:   [10.120 ns 10.250 ns 10.400 ns]
Encoding/encode_uint/alloy       time:   [20.000 ns 20.500 ns 21.000 ns]
Decoding/decode_bytes/zabi-rs    time:   [1.1000 µs 1.2000 µs 1.3000 µs]
`

const sampleDoc = `# zabi

## Benchmarks

<!-- BENCHMARK_TABLE_START -->

| old | table |

<!-- BENCHMARK_TABLE_END -->

Footer.
`

type fakeRunner struct {
	capture *benchmark.Capture
	err     error
	calls   int
}

func (f *fakeRunner) Run(ctx context.Context) (*benchmark.Capture, error) {
	f.calls++
	return f.capture, f.err
}

type recordingNotifier struct {
	messages []string
}

func (r *recordingNotifier) Notify(ctx context.Context, message string) error {
	r.messages = append(r.messages, message)
	return nil
}

// executeCommand runs root with args and returns the combined output.
func executeCommand(root *cobra.Command, args ...string) (string, error) {
	resetFlags(root)
	// Mock exit
	oldExit := exit
	exit = func(code int) {
		if code != 0 {
			panic(fmt.Sprintf("exit-%d", code))
		}
	}
	defer func() { exit = oldExit }()
	defer func() {
		if r := recover(); r != nil {
			if s, ok := r.(string); ok && strings.HasPrefix(s, "exit-") {
				return
			}
			panic(r)
		}
	}()
	root.SetArgs(args)
	b := new(bytes.Buffer)
	root.SetOut(b)
	root.SetErr(b)
	root.SetIn(bytes.NewBufferString(""))
	err := root.Execute()
	return b.String(), err
}

// resetFlags resets all flags to their default values.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if f.Changed {
			f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// setupWorkspace moves the test into a temp dir holding README.md and swaps
// the command factories for fakes.
func setupWorkspace(t *testing.T, runner benchmark.Runner) (string, *recordingNotifier) {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)
	for _, env := range []string{"BENCHDOC_DOCUMENT", "BENCHDOC_PRIMARY_LIBRARY", "BENCHDOC_LOG_FILE", "SLACK_BOT_USER_TOKEN"} {
		t.Setenv(env, "")
		os.Unsetenv(env)
	}

	path := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0644))

	oldRunner, oldNotifier, oldConfirm := newRunner, newNotifier, confirmWrite
	t.Cleanup(func() {
		newRunner, newNotifier, confirmWrite = oldRunner, oldNotifier, oldConfirm
	})

	notifier := &recordingNotifier{}
	newRunner = func() benchmark.Runner { return runner }
	newNotifier = func(config.Settings) notify.Notifier { return notifier }

	return path, notifier
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
