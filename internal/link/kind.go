// Package link classifies calibration child frames into the closed set of
// sensor categories the macro dispatch table knows how to render.
package link

import "strings"

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind enumerates the sensor categories a child frame can resolve to.
// KindJointUnit is the catch-all for frames that match no sensor pattern:
// multi-sensor mounting groups expanded from their own calibration file
// rather than rendered directly.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as the invalid Kind

	KindCamera
	KindIMU
	KindGNSS
	KindLivox
	KindPandar40P
	KindPandarOT128
	KindPandarXT32
	KindPandarQT
	KindPandarQT128
	KindVelodyne16
	KindVLS128
	KindRadar
	KindJointUnit

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// kindValues maps each Kind to the canonical type string calibration authors
// may declare explicitly.
var kindValues = [...]string{
	KindCamera:      "monocular_camera",
	KindIMU:         "imu",
	KindGNSS:        "gnss",
	KindLivox:       "livox_horizon",
	KindPandar40P:   "pandar_40p",
	KindPandarOT128: "pandar_ot128",
	KindPandarXT32:  "pandar_xt32",
	KindPandarQT:    "pandar_qt",
	KindPandarQT128: "pandar_qt128",
	KindVelodyne16:  "velodyne_16",
	KindVLS128:      "velodyne_128",
	KindRadar:       "radar",
	KindJointUnit:   "units",
}

// Value returns the canonical type string for the kind, or "" for an
// invalid kind.
func (k Kind) Value() string {
	if k <= 0 || int(k) >= len(kindValues) {
		return ""
	}

	return kindValues[k]
}

// IsSensor reports whether the kind is a terminal sensor with a dispatch
// entry, as opposed to a joint unit.
func (k Kind) IsSensor() bool {
	return k > 0 && int(k) < len(kindValues) && k != KindJointUnit
}

// FromValue resolves an explicitly declared type string to its Kind.
// Comparison is case-insensitive. Returns the zero Kind when nothing
// matches; callers fall back to the name heuristic in that case.
func FromValue(value string) Kind {
	lower := strings.ToLower(value)
	for k := KindCamera; int(k) < len(kindValues); k++ {
		if kindValues[k] == lower {
			return k
		}
	}

	return 0
}
