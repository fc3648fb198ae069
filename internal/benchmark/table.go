package benchmark

import "strings"

const (
	// NoDataTable is rendered when no measurement was parsed.
	NoDataTable = "No benchmark data found.\n"
	// Absent fills cells without a measurement.
	Absent = "N/A"

	scenarioHeader = "Scenario"
)

// Render formats rs as a markdown table ordered by layout. The result always
// ends with a newline.
func Render(rs ResultSet, layout Layout) string {
	if layout.Empty() {
		return NoDataTable
	}

	var sb strings.Builder

	sb.WriteString("| " + scenarioHeader + " | ")
	sb.WriteString(strings.Join(layout.Libraries, " | "))
	sb.WriteString(" |\n")

	sb.WriteString("|" + strings.Repeat("-", len(scenarioHeader)+2) + "|")
	for range layout.Libraries {
		sb.WriteString("---|")
	}
	sb.WriteString("\n")

	for _, scenario := range layout.Scenarios {
		sb.WriteString("| " + scenario + " |")
		for _, lib := range layout.Libraries {
			cell := Absent
			if m, ok := rs.Lookup(scenario, lib); ok {
				cell = m.Cell()
			}
			sb.WriteString(" " + cell + " |")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// RenderTable aggregates and renders rs in one step.
func RenderTable(rs ResultSet, primary string) string {
	return Render(rs, Aggregate(rs, primary))
}
