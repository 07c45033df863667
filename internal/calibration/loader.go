// Package calibration loads sensor calibration YAML and builds the typed
// model the compiler walks: one base frame, many child-frame
// transformations.
package calibration

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a calibration YAML file from the given path and
// returns the document's root mapping node. Failures are classified:
// NotFoundError for a missing file, ParseError for invalid syntax, and
// FormatError for an empty or non-mapping document.
func LoadFile(path string) (*yaml.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}

		return nil, fmt.Errorf("failed to read calibration file %s: %w", path, err)
	}

	root, err := Parse(data)
	if err != nil {
		return nil, attachPath(err, path)
	}

	return root, nil
}

// Parse parses YAML data and returns the root mapping node.
func Parse(data []byte) (*yaml.Node, error) {
	var doc yaml.Node

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, &FormatError{Reason: "document is empty"}
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
			return nil, &FormatError{Reason: "document is empty"}
		}

		return nil, &FormatError{Reason: "document must contain a mapping"}
	}

	return root, nil
}

// attachPath stamps the source path onto classified parse failures so the
// surfaced message names the offending file.
func attachPath(err error, path string) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		pe.Path = path
		return err
	}

	var fe *FormatError
	if errors.As(err, &fe) {
		fe.Path = path
		return err
	}

	return err
}
