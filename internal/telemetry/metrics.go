package telemetry

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Run outcomes recorded on benchdoc_runs_total.
const (
	OutcomeUpdated        = "updated"
	OutcomeUnchanged      = "unchanged"
	OutcomeDryRun         = "dry_run"
	OutcomeProcessFailure = "process_failure"
	OutcomeMissingMarker  = "missing_marker"
	OutcomeDeclined       = "declined"
	OutcomeError          = "error"
)

// Metrics holds the pipeline metrics in a dedicated registry.
type Metrics struct {
	Registry *prometheus.Registry

	RunsTotal            *prometheus.CounterVec
	LinesScanned         prometheus.Counter
	ShortNames           prometheus.Counter
	MeasurementsParsed   prometheus.Gauge
	TableRows            prometheus.Gauge
	TableColumns         prometheus.Gauge
	BenchmarkDuration    prometheus.Gauge
	LastRunTimestamp     prometheus.Gauge
	DocumentUpdatesTotal *prometheus.CounterVec
}

// NewMetrics creates and registers all pipeline metrics.
func NewMetrics() *Metrics {
	m := &Metrics{Registry: prometheus.NewRegistry()}

	m.RunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "benchdoc_runs_total",
			Help: "Total number of pipeline runs by outcome",
		},
		[]string{"outcome"},
	)

	m.LinesScanned = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "benchdoc_lines_scanned_total",
			Help: "Lines of benchmark output examined by the parser",
		},
	)

	m.ShortNames = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "benchdoc_short_names_total",
			Help: "Result lines skipped because the name had fewer than three components",
		},
	)

	m.MeasurementsParsed = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "benchdoc_measurements_parsed",
			Help: "Distinct (scenario, library) measurements in the last run",
		},
	)

	m.TableRows = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "benchdoc_table_rows",
			Help: "Scenario rows in the last rendered table",
		},
	)

	m.TableColumns = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "benchdoc_table_columns",
			Help: "Library columns in the last rendered table",
		},
	)

	m.BenchmarkDuration = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "benchdoc_benchmark_duration_seconds",
			Help: "Wall time of the last benchmark process",
		},
	)

	m.LastRunTimestamp = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "benchdoc_last_run_timestamp_seconds",
			Help: "Unix time the last run finished",
		},
	)

	m.DocumentUpdatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "benchdoc_document_updates_total",
			Help: "Document update attempts by result",
		},
		[]string{"result"},
	)

	m.Registry.MustRegister(
		m.RunsTotal,
		m.LinesScanned,
		m.ShortNames,
		m.MeasurementsParsed,
		m.TableRows,
		m.TableColumns,
		m.BenchmarkDuration,
		m.LastRunTimestamp,
		m.DocumentUpdatesTotal,
	)

	return m
}

// ObserveBenchmark records how long the benchmark process ran.
func (m *Metrics) ObserveBenchmark(d time.Duration) {
	m.BenchmarkDuration.Set(d.Seconds())
}

// ObserveParse records parser statistics.
func (m *Metrics) ObserveParse(lines, shortNames, measurements int) {
	m.LinesScanned.Add(float64(lines))
	m.ShortNames.Add(float64(shortNames))
	m.MeasurementsParsed.Set(float64(measurements))
}

// ObserveTable records the shape of the rendered table.
func (m *Metrics) ObserveTable(rows, columns int) {
	m.TableRows.Set(float64(rows))
	m.TableColumns.Set(float64(columns))
}

// TrackDocumentUpdate counts a document update attempt.
func (m *Metrics) TrackDocumentUpdate(result string) {
	m.DocumentUpdatesTotal.WithLabelValues(result).Inc()
}

// TrackRun counts a finished run and stamps its completion time.
func (m *Metrics) TrackRun(outcome string, at time.Time) {
	m.RunsTotal.WithLabelValues(outcome).Inc()
	m.LastRunTimestamp.Set(float64(at.Unix()))
}

// WriteTextfile writes the registry in text exposition format to path,
// suitable for the node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.Registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
