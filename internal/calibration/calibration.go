package calibration

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"xacro-compiler/internal/diagnostic"
)

// Calibration holds every sensor transformation declared relative to a
// single base frame. Transforms keep their declaration order so identical
// inputs always compile to byte-identical output.
type Calibration struct {
	BaseFrame  string
	Transforms []*Transformation
}

// New builds a Calibration from a parsed calibration document. The document
// must hold exactly one top-level string key (the base frame) whose value
// maps child frames to transformation entries. Advisory notices raised while
// constructing transformations are appended to diags.
func New(root *yaml.Node, diags *diagnostic.Diagnostics) (*Calibration, error) {
	if root == nil || root.Kind != yaml.MappingNode {
		return nil, &FormatError{Reason: "calibration must be a mapping"}
	}

	if len(root.Content) != 2 {
		return nil, &FormatError{
			Reason: fmt.Sprintf("calibration must have exactly one base frame, got %d top-level keys", len(root.Content)/2),
		}
	}

	keyNode, valNode := root.Content[0], root.Content[1]
	if keyNode.Kind != yaml.ScalarNode || keyNode.Tag != "!!str" {
		return nil, &FormatError{Reason: "base frame key must be a string"}
	}

	if valNode.Kind != yaml.MappingNode {
		return nil, &FormatError{
			Reason: fmt.Sprintf("base frame %q must map child frames to transformations", keyNode.Value),
		}
	}

	calib := &Calibration{BaseFrame: keyNode.Value}

	for i := 0; i+1 < len(valNode.Content); i += 2 {
		childKey, childVal := valNode.Content[i], valNode.Content[i+1]
		if childKey.Kind != yaml.ScalarNode || childKey.Tag != "!!str" {
			return nil, &FormatError{
				Reason: fmt.Sprintf("child frame keys under %q must be strings", calib.BaseFrame),
			}
		}

		t, err := newTransformation(childVal, calib.BaseFrame, childKey.Value, diags)
		if err != nil {
			return nil, err
		}

		calib.Transforms = append(calib.Transforms, t)
	}

	return calib, nil
}

// ByChildFrame returns the transformation for the given child frame, or nil.
func (c *Calibration) ByChildFrame(childFrame string) *Transformation {
	for _, t := range c.Transforms {
		if t.ChildFrame == childFrame {
			return t
		}
	}

	return nil
}
