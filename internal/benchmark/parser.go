package benchmark

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

// Regex to parse criterion result lines:
// Decoding/Uint256/zabi-rs time:   [2.3364 ns 2.3421 ns 2.3486 ns]
var timeRegex = regexp.MustCompile(
	`(?:^|\s)(?P<name>\S+)\s+time:\s+\[` +
		`(?P<low>` + number + `)\s+(?P<lowunit>\S+)\s+` +
		`(?P<mid>` + number + `)\s+(?P<unit>\S+)\s+` +
		`(?P<high>` + number + `)\s+(?P<highunit>[^\s\]]+)\]`)

const number = `[-+]?\d*\.?\d+(?:[eE][-+]?\d+)?`

var (
	nameGroup = timeRegex.SubexpIndex("name")
	midGroup  = timeRegex.SubexpIndex("mid")
	unitGroup = timeRegex.SubexpIndex("unit")
)

// nameSeparator splits group/scenario/library names.
const nameSeparator = "/"

// maxLineSize bounds the length of a line the grammar is applied to.
// Longer lines are counted as misses.
const maxLineSize = 1024 * 1024

// Stats counts what the parser saw.
type Stats struct {
	Lines     int
	Matched   int
	ShortName int
}

// ParseLine applies the line grammar. It reports false for lines that do not
// carry a result or whose name has fewer than three components.
func ParseLine(line string) (Measurement, bool) {
	m, matched := parseLine(line)
	return m, matched && m.Library != ""
}

func parseLine(line string) (Measurement, bool) {
	matches := timeRegex.FindStringSubmatch(line)
	if matches == nil {
		return Measurement{}, false
	}

	parts := strings.Split(matches[nameGroup], nameSeparator)
	if len(parts) < 3 {
		return Measurement{}, true
	}

	return Measurement{
		Scenario: parts[1],
		Library:  parts[2],
		Value:    matches[midGroup],
		Unit:     matches[unitGroup],
	}, true
}

// ParseReader reads r line by line and collects every result it finds.
// Later lines for the same (scenario, library) pair win. Only read errors
// are returned; lines that carry no result are skipped.
func ParseReader(r io.Reader) (ResultSet, Stats, error) {
	results := make(ResultSet)
	var stats Stats

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			stats.Lines++
			collect(results, &stats, strings.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			return results, stats, nil
		}
		if err != nil {
			return results, stats, err
		}
	}
}

func collect(results ResultSet, stats *Stats, line string) {
	if len(line) > maxLineSize {
		return
	}
	m, matched := parseLine(line)
	if !matched {
		return
	}
	if m.Library == "" {
		stats.ShortName++
		return
	}
	stats.Matched++
	results.Add(m)
}

// Parse parses captured benchmark output held in memory.
func Parse(output string) ResultSet {
	// strings.Reader never fails a read
	results, _, _ := ParseReader(strings.NewReader(output))
	return results
}
