package benchmark

import "sort"

// DefaultPrimaryLibrary is the library shown in the leftmost data column.
const DefaultPrimaryLibrary = "zabi-rs"

// Layout is the canonical ordering of a result set.
type Layout struct {
	Libraries []string
	Scenarios []string
}

// Empty reports whether there is nothing to show.
func (l Layout) Empty() bool {
	return len(l.Scenarios) == 0 || len(l.Libraries) == 0
}

// Aggregate collects the distinct libraries and scenarios of rs.
// Both lists are sorted; primary, if present, is moved to the front of the
// library list.
func Aggregate(rs ResultSet, primary string) Layout {
	seen := make(map[string]bool)
	var layout Layout

	for scenario, libs := range rs {
		layout.Scenarios = append(layout.Scenarios, scenario)
		for lib := range libs {
			if !seen[lib] {
				seen[lib] = true
				layout.Libraries = append(layout.Libraries, lib)
			}
		}
	}

	sort.Strings(layout.Scenarios)
	layout.Libraries = OrderLibraries(layout.Libraries, primary)
	return layout
}

// OrderLibraries returns a sorted copy of libs with primary moved to the
// front when present. libs is not modified.
func OrderLibraries(libs []string, primary string) []string {
	if libs == nil {
		return nil
	}
	libs = append([]string(nil), libs...)
	sort.Strings(libs)
	for i, lib := range libs {
		if lib == primary {
			copy(libs[1:i+1], libs[:i])
			libs[0] = primary
			break
		}
	}
	return libs
}
