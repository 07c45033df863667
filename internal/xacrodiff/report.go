package xacrodiff

import (
	"fmt"
	"sort"
	"strings"
)

// leadingParams are reported first, in this order; remaining parameters
// follow alphabetically.
var leadingParams = []string{"name", "parent", "x", "y", "z", "roll", "pitch", "yaw"}

// orderedParams returns the union of both parameter sets in report order.
func orderedParams(a, b map[string]string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	var params []string

	for _, p := range leadingParams {
		_, inA := a[p]
		_, inB := b[p]

		if inA || inB {
			params = append(params, p)
			seen[p] = true
		}
	}

	var rest []string

	for p := range a {
		if !seen[p] {
			rest = append(rest, p)
			seen[p] = true
		}
	}

	for p := range b {
		if !seen[p] {
			rest = append(rest, p)
			seen[p] = true
		}
	}

	sort.Strings(rest)

	return append(params, rest...)
}

// Report renders the differences between the two files as markdown.
func (a *Analyzer) Report() string {
	var sb strings.Builder

	sb.WriteString("# Key Differences\n")

	a.reportIncludes(&sb)
	a.reportSensors(&sb)

	return sb.String()
}

func (a *Analyzer) reportIncludes(sb *strings.Builder) {
	originalIncludes := includes(a.original)
	updatedIncludes := includes(a.updated)

	inOriginal := make(map[string]bool, len(originalIncludes))
	for _, f := range originalIncludes {
		inOriginal[f] = true
	}

	inUpdated := make(map[string]bool, len(updatedIncludes))
	for _, f := range updatedIncludes {
		inUpdated[f] = true
	}

	var added, removed []string

	for _, f := range updatedIncludes {
		if !inOriginal[f] {
			added = append(added, f)
		}
	}

	for _, f := range originalIncludes {
		if !inUpdated[f] {
			removed = append(removed, f)
		}
	}

	if len(added) == 0 && len(removed) == 0 {
		return
	}

	sb.WriteString("\n## 1. Include Files\n")

	if len(added) > 0 {
		sb.WriteString("\nAdded:\n")
		for _, f := range added {
			fmt.Fprintf(sb, "- %s\n", f)
		}
	}

	if len(removed) > 0 {
		sb.WriteString("\nRemoved:\n")
		for _, f := range removed {
			fmt.Fprintf(sb, "- %s\n", f)
		}
	}
}

func (a *Analyzer) reportSensors(sb *strings.Builder) {
	originalByFamily := sensorsByFamily(a.original)
	updatedByFamily := sensorsByFamily(a.updated)

	var header bool

	for _, f := range sensorFamilies {
		section := diffFamily(originalByFamily[f.Label], updatedByFamily[f.Label])
		if section == "" {
			continue
		}

		if !header {
			sb.WriteString("\n## 2. Sensor Configuration Changes\n")

			header = true
		}

		fmt.Fprintf(sb, "\n### %s\n%s", f.Label, section)
	}
}

// diffFamily describes how one sensor family changed: sensors appearing or
// disappearing by name, then a parameter-level diff of the first sensor pair.
func diffFamily(original, updated []sensor) string {
	var sb strings.Builder

	names := func(sensors []sensor) map[string]bool {
		set := make(map[string]bool, len(sensors))
		for _, s := range sensors {
			set[s.Name] = true
		}

		return set
	}

	originalNames := names(original)
	updatedNames := names(updated)

	for _, s := range updated {
		if !originalNames[s.Name] {
			fmt.Fprintf(&sb, "- added sensor %q\n", s.Name)
		}
	}

	for _, s := range original {
		if !updatedNames[s.Name] {
			fmt.Fprintf(&sb, "- removed sensor %q\n", s.Name)
		}
	}

	if len(original) > 0 && len(updated) > 0 {
		sb.WriteString(diffParams(original[0].Params, updated[0].Params))
	}

	return sb.String()
}

func diffParams(original, updated map[string]string) string {
	var sb strings.Builder

	for _, p := range orderedParams(original, updated) {
		before, inOriginal := original[p]
		after, inUpdated := updated[p]

		switch {
		case !inOriginal:
			fmt.Fprintf(&sb, "- %s: added \"%s\"\n", p, after)
		case !inUpdated:
			fmt.Fprintf(&sb, "- %s: removed \"%s\"\n", p, before)
		case before != after:
			fmt.Fprintf(&sb, "- %s: \"%s\" → \"%s\"\n", p, before, after)
		}
	}

	return sb.String()
}
