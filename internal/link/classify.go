package link

import (
	"fmt"
	"strings"

	"xacro-compiler/internal/diagnostic"
)

// nameRule pairs a predicate over the lower-cased frame identifier with the
// Kind it resolves to.
type nameRule struct {
	matches func(name string) bool
	kind    Kind
}

func contains(marker string) func(string) bool {
	return func(name string) bool { return strings.Contains(name, marker) }
}

func containsAll(markers ...string) func(string) bool {
	return func(name string) bool {
		for _, m := range markers {
			if !strings.Contains(name, m) {
				return false
			}
		}

		return true
	}
}

func containsAny(markers ...string) func(string) bool {
	return func(name string) bool {
		for _, m := range markers {
			if strings.Contains(name, m) {
				return true
			}
		}

		return false
	}
}

// nameRules is evaluated in order; the first match wins. The order is part
// of the contract: roof Velodynes ("velodyne"+"top") must be tested before
// plain "velodyne", and "hesai_top"/"hesai_front" before the bare "hesai"
// fallback.
var nameRules = []nameRule{
	{contains("cam"), KindCamera},
	{contains("imu"), KindIMU},
	{contains("gnss"), KindGNSS},
	{contains("livox"), KindLivox},
	{containsAll("velodyne", "top"), KindVLS128},
	{contains("velodyne"), KindVelodyne16},
	{containsAny("radar", "ars"), KindRadar},
	{contains("pandar_40p"), KindPandar40P},
	{contains("pandar_qt"), KindPandarQT},
	{contains("hesai_top"), KindPandarOT128},
	{contains("hesai_front"), KindPandarXT32},
	{contains("hesai"), KindPandarXT32},
}

// FromName guesses the Kind from a frame identifier. Frames matching no rule
// are assumed to be joint units, which is reported as an advisory rather
// than an error: most deployed calibrations rely on naming convention and
// only mounting groups fall through every sensor pattern.
func FromName(name string, diags *diagnostic.Diagnostics) Kind {
	lower := strings.ToLower(name)

	for _, rule := range nameRules {
		if rule.matches(lower) {
			return rule.kind
		}
	}

	if diags != nil {
		diags.AddInfo("assumed_joint_unit",
			fmt.Sprintf("no sensor pattern matches %q, suspected to be a joint unit", name),
			"", name)
	}

	return KindJointUnit
}

// Classify resolves the Kind for a transformation. An explicitly declared
// type is authoritative when it names a known kind, so calibration authors
// can override ambiguous frame names; otherwise the child frame name
// decides.
func Classify(declaredType, childFrame string, diags *diagnostic.Diagnostics) Kind {
	if declaredType != "" {
		if k := FromValue(declaredType); k != 0 {
			return k
		}
	}

	return FromName(childFrame, diags)
}
