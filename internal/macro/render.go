package macro

import (
	"fmt"

	"xacro-compiler/internal/calibration"
)

// The two invocation shapes. flatShape covers every sensor kind except the
// Velodyne LiDARs, whose description packages expect a child element with a
// nested origin block instead of flat attributes. The layout (indentation
// and line breaks included) is part of the output contract; downstream
// tooling diffs these files textually.
const flatShape = `<xacro:%s
        name="%s"
        parent="%s"
        x="%s"
        y="%s"
        z="%s"
        roll="%s"
        pitch="%s"
        yaw="%s"
        %s
    />`

const nestedShape = `<xacro:%s parent="%s" name="%s" topic="/points_raw" hz="10" samples="220" gpu="$(arg gpu)">
    <origin
        xyz="%s
            %s
            %s"
        rpy="%s
            %s
            %s"
    />
    </xacro:%s>`

// Category extras appended to the flat shape.
const (
	cameraExtra = `fps="30"
        width="800"
        height="400"
        namespace=""
        fov="1.3"`

	imuExtra = `fps="100"
        namespace=""`
)

// renderFlat produces the flat-attribute invocation for macroName. The name
// attribute carries the transformation's frame_id, not its raw child frame;
// the macro families that need a base_link suffix add it themselves.
func renderFlat(macroName, extra string, t *calibration.Transformation) string {
	return fmt.Sprintf(flatShape,
		macroName,
		t.FrameID,
		t.BaseFrame,
		Offset(t, "x"), Offset(t, "y"), Offset(t, "z"),
		Offset(t, "roll"), Offset(t, "pitch"), Offset(t, "yaw"),
		extra,
	)
}

// renderNested produces the child-element invocation used by the Velodyne
// macro families.
func renderNested(macroName string, t *calibration.Transformation) string {
	return fmt.Sprintf(nestedShape,
		macroName,
		t.BaseFrame,
		t.FrameID,
		Offset(t, "x"), Offset(t, "y"), Offset(t, "z"),
		Offset(t, "roll"), Offset(t, "pitch"), Offset(t, "yaw"),
		macroName,
	)
}
