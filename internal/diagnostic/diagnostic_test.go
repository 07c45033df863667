package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{
		Severity: SeverityWarning,
		Code:     "inferred_link_type",
		Message:  "link type not explicitly defined",
		Source:   "sensors_calibration.yaml",
		Frame:    "camera_front_link",
	}

	assert.Equal(t,
		"warning: [sensors_calibration.yaml] camera_front_link: [inferred_link_type] link type not explicitly defined",
		d.String())
}

func TestAddAndMerge(t *testing.T) {
	a := &Diagnostics{}
	a.AddWarning("w1", "first warning", "", "frame_a")
	a.AddInfo("i1", "first info", "", "frame_b")

	b := &Diagnostics{}
	b.AddWarning("w2", "second warning", "", "frame_c")

	a.Merge(*b)

	require.Len(t, a.Warnings, 2)
	require.Len(t, a.Infos, 1)
	assert.False(t, a.IsEmpty())

	// Warnings come first in the combined view.
	all := a.All()
	require.Len(t, all, 3)
	assert.Equal(t, SeverityWarning, all[0].Severity)
	assert.Equal(t, SeverityWarning, all[1].Severity)
	assert.Equal(t, SeverityInfo, all[2].Severity)
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, (&Diagnostics{}).IsEmpty())
}
