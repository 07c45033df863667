package calibration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xacro-compiler/internal/diagnostic"
)

func parseCalibration(t *testing.T, input string) (*Calibration, *diagnostic.Diagnostics, error) {
	t.Helper()

	root, err := Parse([]byte(input))
	require.NoError(t, err)

	diags := &diagnostic.Diagnostics{}
	calib, newErr := New(root, diags)

	return calib, diags, newErr
}

func TestNew(t *testing.T) {
	input := `
base_link:
  velodyne_top_base_link:
    x: 0.0
    y: 0.0
    z: 3.1
    roll: 0.0
    pitch: 0.0
    yaw: 0.0
    type: velodyne_128
  camera_front_link:
    x: 1.2
    y: 0.1
    z: 1.8
    roll: 0.0
    pitch: 0.05
    yaw: 0.0
    type: monocular_camera
`

	calib, _, err := parseCalibration(t, input)
	require.NoError(t, err)

	assert.Equal(t, "base_link", calib.BaseFrame)
	require.Len(t, calib.Transforms, 2)

	// Declaration order is preserved.
	assert.Equal(t, "velodyne_top_base_link", calib.Transforms[0].ChildFrame)
	assert.Equal(t, "camera_front_link", calib.Transforms[1].ChildFrame)

	first := calib.Transforms[0]
	assert.Equal(t, "base_link", first.BaseFrame)
	assert.InDelta(t, 3.1, first.Z, 1e-9)
	assert.Equal(t, "velodyne_128", first.Type)
}

func TestNewRejectsMultipleBaseFrames(t *testing.T) {
	input := `
base_link:
  a_link: {x: 0, y: 0, z: 0, roll: 0, pitch: 0, yaw: 0}
other_link:
  b_link: {x: 0, y: 0, z: 0, roll: 0, pitch: 0, yaw: 0}
`

	_, _, err := parseCalibration(t, input)
	require.Error(t, err)

	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Contains(t, formatErr.Reason, "exactly one base frame")
	assert.Contains(t, formatErr.Reason, "2")
}

func TestNewRejectsScalarChildren(t *testing.T) {
	_, _, err := parseCalibration(t, "base_link: just_a_string")
	require.Error(t, err)

	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Contains(t, formatErr.Reason, "child frames")
}

func TestNewMissingOffsetField(t *testing.T) {
	input := `
base_link:
  imu_link:
    x: 0.0
    y: 0.0
    z: 0.5
    roll: 0.0
    pitch: 0.0
`

	_, _, err := parseCalibration(t, input)
	require.Error(t, err)

	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "imu_link", missing.ChildFrame)
	assert.Equal(t, "yaw", missing.Field)
}

func TestByChildFrame(t *testing.T) {
	input := `
base_link:
  imu_link: {x: 0, y: 0, z: 0.5, roll: 0, pitch: 0, yaw: 0, type: imu}
`

	calib, _, err := parseCalibration(t, input)
	require.NoError(t, err)

	require.NotNil(t, calib.ByChildFrame("imu_link"))
	assert.Nil(t, calib.ByChildFrame("missing_link"))
}
