package link

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xacro-compiler/internal/diagnostic"
)

func TestFromValue(t *testing.T) {
	assert.Equal(t, KindVLS128, FromValue("velodyne_128"))
	assert.Equal(t, KindCamera, FromValue("monocular_camera"))
	assert.Equal(t, Kind(0), FromValue("not_a_sensor"))

	// Declared types are matched case-insensitively.
	assert.Equal(t, KindRadar, FromValue("RADAR"))
	assert.Equal(t, KindPandarXT32, FromValue("Pandar_XT32"))
}

func TestValueRoundTrip(t *testing.T) {
	for k := Kind(1); int(k) < KindTotal; k++ {
		require.NotEmpty(t, k.Value())
		assert.Equal(t, k, FromValue(k.Value()))
	}
}

func TestClassifyExplicitTypeWins(t *testing.T) {
	diags := &diagnostic.Diagnostics{}

	// The declared type is authoritative even when the frame name suggests
	// a different sensor.
	assert.Equal(t, KindRadar, Classify("radar", "camera_front_link", diags))
	assert.Empty(t, diags.Infos)
}

func TestClassifyFallsBackToName(t *testing.T) {
	diags := &diagnostic.Diagnostics{}

	assert.Equal(t, KindCamera, Classify("bogus_type", "camera_front_link", diags))
}

func TestFromName(t *testing.T) {
	tests := []struct {
		name string
		want Kind
	}{
		{name: "camera_front_link", want: KindCamera},
		{name: "imu_link", want: KindIMU},
		{name: "gnss_antenna_link", want: KindGNSS},
		{name: "livox_front_link", want: KindLivox},
		{name: "velodyne_top_base_link", want: KindVLS128},
		{name: "velodyne_rear_link", want: KindVelodyne16},
		{name: "front_radar_link", want: KindRadar},
		{name: "ars_408_link", want: KindRadar},
		{name: "pandar_40p_link", want: KindPandar40P},
		{name: "pandar_qt_link", want: KindPandarQT},
		{name: "hesai_top_link", want: KindPandarOT128},
		{name: "hesai_front_link", want: KindPandarXT32},
		{name: "hesai_left_link", want: KindPandarXT32},
		{name: "CAMERA_REAR_LINK", want: KindCamera},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := &diagnostic.Diagnostics{}

			assert.Equal(t, tt.want, FromName(tt.name, diags))
			assert.Empty(t, diags.Infos)
		})
	}
}

func TestFromNameUnknownIsJointUnit(t *testing.T) {
	diags := &diagnostic.Diagnostics{}

	assert.Equal(t, KindJointUnit, FromName("rear_mount", diags))

	// The fallback is advisory, not an error.
	require.Len(t, diags.Infos, 1)
	assert.Equal(t, "assumed_joint_unit", diags.Infos[0].Code)
}

func TestIsSensor(t *testing.T) {
	assert.True(t, KindCamera.IsSensor())
	assert.True(t, KindVLS128.IsSensor())
	assert.False(t, KindJointUnit.IsSensor())
}
