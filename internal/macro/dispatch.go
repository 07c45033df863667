package macro

import (
	"xacro-compiler/internal/calibration"
	"xacro-compiler/internal/link"
)

// Entry pairs the include file a sensor kind requires with the strategy that
// renders its macro invocation.
type Entry struct {
	// IncludeFile locates the xacro file defining the kind's macro.
	IncludeFile string
	// Render produces the macro-invocation string for one transformation.
	Render func(t *calibration.Transformation) string
}

// Lookup returns the dispatch entry for a sensor kind. The switch is the
// dispatch table: one arm per kind, fixed at build time. Joint units have no
// entry; their sensors come from a recursive pass over the unit's own
// calibration (see UnitIncludeFile), so asking for one is a programming
// error and panics.
func Lookup(kind link.Kind) Entry {
	switch kind {
	case link.KindCamera:
		return Entry{
			IncludeFile: "$(find camera_description)/urdf/monocular_camera.xacro",
			Render: func(t *calibration.Transformation) string {
				return renderFlat("monocular_camera_macro", cameraExtra, t)
			},
		}

	case link.KindIMU, link.KindGNSS:
		// GNSS receivers reuse the imu description package.
		return Entry{
			IncludeFile: "$(find imu_description)/urdf/imu.xacro",
			Render: func(t *calibration.Transformation) string {
				return renderFlat("imu_macro", imuExtra, t)
			},
		}

	case link.KindVelodyne16:
		return Entry{
			IncludeFile: "$(find velodyne_description)/urdf/VLP-16.urdf.xacro",
			Render: func(t *calibration.Transformation) string {
				return renderNested("VLP-16", t)
			},
		}

	case link.KindVLS128:
		return Entry{
			IncludeFile: "$(find vls_description)/urdf/VLS-128.urdf.xacro",
			Render: func(t *calibration.Transformation) string {
				return renderNested("VLS-128", t)
			},
		}

	case link.KindPandar40P:
		return Entry{
			IncludeFile: "$(find pandar_description)/urdf/pandar_40p.xacro",
			Render: func(t *calibration.Transformation) string {
				return renderFlat("Pandar40P", "", t)
			},
		}

	case link.KindPandarOT128:
		return Entry{
			IncludeFile: "$(find pandar_description)/urdf/pandar_ot128.xacro",
			Render: func(t *calibration.Transformation) string {
				return renderFlat("PandarOT-128", "", t)
			},
		}

	case link.KindPandarXT32:
		return Entry{
			IncludeFile: "$(find pandar_description)/urdf/pandar_xt32.xacro",
			Render: func(t *calibration.Transformation) string {
				return renderFlat("PandarXT-32", "", t)
			},
		}

	case link.KindPandarQT:
		return Entry{
			IncludeFile: "$(find pandar_description)/urdf/pandar_qt.xacro",
			Render: func(t *calibration.Transformation) string {
				return renderFlat("PandarQT", "", t)
			},
		}

	case link.KindPandarQT128:
		return Entry{
			IncludeFile: "$(find pandar_description)/urdf/pandar_qt128.xacro",
			Render: func(t *calibration.Transformation) string {
				return renderFlat("PandarQT-128", "", t)
			},
		}

	case link.KindLivox:
		return Entry{
			IncludeFile: "$(find livox_description)/urdf/livox_horizon.xacro",
			Render: func(t *calibration.Transformation) string {
				return renderFlat("livox_horizon_macro", "", t)
			},
		}

	case link.KindRadar:
		return Entry{
			IncludeFile: "$(find radar_description)/urdf/radar.xacro",
			Render: func(t *calibration.Transformation) string {
				return renderFlat("radar_macro", "", t)
			},
		}

	case link.KindJointUnit:
		panic("macro: joint units have no dispatch entry; expand them from their own calibration")

	default:
		panic("macro: no dispatch entry for " + kind.String())
	}
}

// UnitIncludeFile returns the include reference for a joint unit's generated
// definitions file.
func UnitIncludeFile(name string) string {
	return name + ".xacro"
}
