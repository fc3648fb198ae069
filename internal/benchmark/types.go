package benchmark

// Measurement is one parsed benchmark result.
// Value and Unit are kept verbatim as they appeared in the benchmark output.
type Measurement struct {
	Scenario string `json:"scenario"`
	Library  string `json:"library"`
	Value    string `json:"value"`
	Unit     string `json:"unit"`
}

// Cell returns the "<value> <unit>" text used in the rendered table.
func (m Measurement) Cell() string {
	return m.Value + " " + m.Unit
}

// ResultSet maps scenario -> library -> measurement.
type ResultSet map[string]map[string]Measurement

// Add stores m, replacing any earlier measurement for the same pair.
func (rs ResultSet) Add(m Measurement) {
	libs, ok := rs[m.Scenario]
	if !ok {
		libs = make(map[string]Measurement)
		rs[m.Scenario] = libs
	}
	libs[m.Library] = m
}

// Lookup returns the measurement for (scenario, library), if any.
func (rs ResultSet) Lookup(scenario, library string) (Measurement, bool) {
	m, ok := rs[scenario][library]
	return m, ok
}

// Len returns the number of stored measurements.
func (rs ResultSet) Len() int {
	n := 0
	for _, libs := range rs {
		n += len(libs)
	}
	return n
}
