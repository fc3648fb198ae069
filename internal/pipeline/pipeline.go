// Package pipeline runs the benchmark, turns its output into a table and
// writes that table into the target document.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"benchdoc/internal/benchmark"
	"benchdoc/internal/document"
	"benchdoc/internal/notify"
	"benchdoc/internal/telemetry"
)

// ErrDeclined is returned when the confirmation callback refuses the write.
var ErrDeclined = errors.New("document update declined")

// Options controls a single run.
type Options struct {
	Document       string
	PrimaryLibrary string
	// DryRun renders the table without touching the document.
	DryRun bool
	// Confirm, when set, is asked before the document is written.
	Confirm func(table string) (bool, error)
	// MetricsFile, when set, receives the metrics after the run.
	MetricsFile string
}

// Report describes what a run produced.
type Report struct {
	Results           benchmark.ResultSet
	Stats             benchmark.Stats
	Layout            benchmark.Layout
	Table             string
	BenchmarkDuration time.Duration
	Outcome           string
	Changed           bool
}

// Pipeline wires the stages together.
type Pipeline struct {
	Runner   benchmark.Runner
	Notifier notify.Notifier
	Metrics  *telemetry.Metrics
	Now      func() time.Time
}

// New returns a pipeline with fresh metrics and notifications disabled.
func New(runner benchmark.Runner) *Pipeline {
	return &Pipeline{
		Runner:   runner,
		Notifier: notify.Nop{},
		Metrics:  telemetry.NewMetrics(),
		Now:      time.Now,
	}
}

// Run executes the stages in order. A benchmark failure stops the run before
// the document is read; a missing marker leaves the document untouched.
func (p *Pipeline) Run(ctx context.Context, opts Options) (report *Report, err error) {
	report = &Report{}
	defer func() {
		if report.Outcome == "" {
			report.Outcome = outcomeFor(err)
		}
		p.finish(report.Outcome, opts.MetricsFile)
	}()

	telemetry.LogInfo("Running benchmarks", "command", strings.Join(benchmark.BenchCommand, " "))

	start := p.Now()
	capture, err := p.Runner.Run(ctx)
	report.BenchmarkDuration = p.Now().Sub(start)
	p.Metrics.ObserveBenchmark(report.BenchmarkDuration)
	if err != nil {
		return report, err
	}
	telemetry.LogInfo("Benchmarks finished", "duration", report.BenchmarkDuration.String(), "exit_code", capture.ExitCode)

	report.Table, err = p.render(strings.NewReader(capture.Stdout), opts.PrimaryLibrary, report)
	if err != nil {
		return report, err
	}

	if opts.DryRun {
		report.Outcome = telemetry.OutcomeDryRun
		return report, nil
	}

	if opts.Confirm != nil {
		ok, err := opts.Confirm(report.Table)
		if err != nil {
			return report, fmt.Errorf("confirmation failed: %w", err)
		}
		if !ok {
			return report, ErrDeclined
		}
	}

	res, err := document.UpdateFile(opts.Document, report.Table)
	if err != nil {
		p.Metrics.TrackDocumentUpdate("failed")
		return report, err
	}
	report.Changed = res.Changed

	if !res.Changed {
		p.Metrics.TrackDocumentUpdate("unchanged")
		report.Outcome = telemetry.OutcomeUnchanged
		telemetry.LogInfo("Document already up to date", "path", opts.Document)
		return report, nil
	}

	p.Metrics.TrackDocumentUpdate("changed")
	report.Outcome = telemetry.OutcomeUpdated
	telemetry.LogInfo("Document updated", "path", opts.Document)

	if err := p.Notifier.Notify(ctx, notify.TableMessage(opts.Document, report.Table)); err != nil {
		telemetry.LogError("Notification failed", err)
	}

	return report, nil
}

// Render parses saved benchmark output from r and returns the table.
func (p *Pipeline) Render(r io.Reader, primary string) (*Report, error) {
	report := &Report{}
	table, err := p.render(r, primary, report)
	if err != nil {
		return nil, err
	}
	report.Table = table
	return report, nil
}

func (p *Pipeline) render(r io.Reader, primary string, report *Report) (string, error) {
	results, stats, err := benchmark.ParseReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to read benchmark output: %w", err)
	}
	report.Results = results
	report.Stats = stats
	p.Metrics.ObserveParse(stats.Lines, stats.ShortName, results.Len())

	telemetry.LogInfo("Parsed benchmark output", "lines", stats.Lines, "measurements", results.Len(), "skipped_short_names", stats.ShortName)
	telemetry.LogDebug("Parsed data", "results", results)

	report.Layout = benchmark.Aggregate(results, primary)
	p.Metrics.ObserveTable(len(report.Layout.Scenarios), len(report.Layout.Libraries))

	table := benchmark.Render(results, report.Layout)
	telemetry.LogDebug("Generated table", "table", table)
	return table, nil
}

func (p *Pipeline) finish(outcome, metricsFile string) {
	p.Metrics.TrackRun(outcome, p.Now())
	if metricsFile == "" {
		return
	}
	if err := p.Metrics.WriteTextfile(metricsFile); err != nil {
		telemetry.LogError("Failed to write metrics", err, "path", metricsFile)
	}
}

func outcomeFor(err error) string {
	var procErr *benchmark.ProcessError
	switch {
	case err == nil:
		return telemetry.OutcomeUpdated
	case errors.As(err, &procErr):
		return telemetry.OutcomeProcessFailure
	case errors.Is(err, document.ErrMissingMarker):
		return telemetry.OutcomeMissingMarker
	case errors.Is(err, ErrDeclined):
		return telemetry.OutcomeDeclined
	default:
		return telemetry.OutcomeError
	}
}
