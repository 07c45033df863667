package calibration

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"xacro-compiler/internal/diagnostic"
	"xacro-compiler/internal/link"
)

// Transformation is one child frame's 6-DOF offset from the base frame plus
// the naming metadata the macro generators need. Values are fixed at
// construction; nothing downstream mutates a Transformation.
type Transformation struct {
	X, Y, Z          float64
	Roll, Pitch, Yaw float64

	BaseFrame  string
	ChildFrame string

	// Name is the child frame with the conventional _base_link / _link
	// suffixes stripped.
	Name string
	// Type is the canonical sensor type string, declared in the source or
	// inferred from the frame name.
	Type string
	// FrameID is the frame name the rendered macro attaches the sensor to.
	FrameID string
}

// offsetFields lists the required numeric components in canonical order.
var offsetFields = [...]string{"x", "y", "z", "roll", "pitch", "yaw"}

func newTransformation(node *yaml.Node, baseFrame, childFrame string, diags *diagnostic.Diagnostics) (*Transformation, error) {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil, &FormatError{
			Reason: fmt.Sprintf("child frame %q must map to transformation fields", childFrame),
		}
	}

	entries := make(map[string]*yaml.Node, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		if k := node.Content[i]; k.Kind == yaml.ScalarNode {
			entries[k.Value] = node.Content[i+1]
		}
	}

	t := &Transformation{BaseFrame: baseFrame, ChildFrame: childFrame}

	offsets := map[string]*float64{
		"x": &t.X, "y": &t.Y, "z": &t.Z,
		"roll": &t.Roll, "pitch": &t.Pitch, "yaw": &t.Yaw,
	}
	for _, field := range offsetFields {
		v, ok := entries[field]
		if !ok {
			return nil, &MissingFieldError{ChildFrame: childFrame, Field: field}
		}

		if err := v.Decode(offsets[field]); err != nil {
			return nil, &FormatError{
				Reason: fmt.Sprintf("child frame %q: field %q must be numeric: %v", childFrame, field, err),
			}
		}
	}

	if v, ok := entries["type"]; ok {
		if err := v.Decode(&t.Type); err != nil {
			return nil, &FormatError{
				Reason: fmt.Sprintf("child frame %q: field \"type\" must be a string: %v", childFrame, err),
			}
		}
	}

	if v, ok := entries["frame_id"]; ok {
		if err := v.Decode(&t.FrameID); err != nil {
			return nil, &FormatError{
				Reason: fmt.Sprintf("child frame %q: field \"frame_id\" must be a string: %v", childFrame, err),
			}
		}
	}

	t.Name = deriveName(childFrame)

	if t.Type == "" {
		t.Type = link.FromName(t.Name, diags).Value()
		if diags != nil {
			diags.AddWarning("inferred_link_type",
				fmt.Sprintf("link type not explicitly defined for %q, inferred %q from the frame name", t.Name, t.Type),
				"", childFrame)
		}
	}

	if t.FrameID == "" {
		t.FrameID = deriveFrameID(t.Type, t.Name, childFrame)
	}

	return t, nil
}

// deriveName strips the conventional suffixes from a child frame identifier.
func deriveName(childFrame string) string {
	name := strings.ReplaceAll(childFrame, "_base_link", "")

	return strings.ReplaceAll(name, "_link", "")
}

// frameIDFamilies are the macro families whose description packages attach a
// base_link suffix themselves; their frame_id is the short derived name.
var frameIDFamilies = [...]string{"pandar", "livox", "camera", "vls", "vlp"}

// deriveFrameID picks the frame the macro should attach the sensor to.
// Everything outside the known families keeps the raw child frame.
func deriveFrameID(typ, name, childFrame string) string {
	lower := strings.ToLower(typ)
	for _, family := range frameIDFamilies {
		if strings.Contains(lower, family) {
			return name
		}
	}

	return childFrame
}
