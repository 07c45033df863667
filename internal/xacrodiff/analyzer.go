// Package xacrodiff compares two generated xacro files and reports the
// differences that matter when reviewing a calibration change: which macro
// definitions are included and how each sensor family is configured.
package xacrodiff

import (
	"encoding/xml"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Element is a generic XML element. Xacro files use namespaced tags the
// standard decoder maps by local name, so matching below ignores prefixes.
type Element struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []Element  `xml:",any"`
}

// Attr returns the value of the named attribute, or "".
func (e *Element) Attr(name string) string {
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}

	return ""
}

// walk calls fn for e and every element below it.
func (e *Element) walk(fn func(*Element)) {
	fn(e)

	for i := range e.Children {
		e.Children[i].walk(fn)
	}
}

// Parse reads and decodes one xacro file.
func Parse(path string) (*Element, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var root Element
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &root, nil
}

// Analyzer holds the two parsed files under comparison.
type Analyzer struct {
	original *Element
	updated  *Element
}

// NewAnalyzer parses both files and returns an analyzer over them.
func NewAnalyzer(originalPath, updatedPath string) (*Analyzer, error) {
	original, err := Parse(originalPath)
	if err != nil {
		return nil, err
	}

	updated, err := Parse(updatedPath)
	if err != nil {
		return nil, err
	}

	return &Analyzer{original: original, updated: updated}, nil
}

// includes collects the filename attribute of every include element, sorted.
func includes(root *Element) []string {
	var files []string

	root.walk(func(e *Element) {
		if e.XMLName.Local == "include" {
			if f := e.Attr("filename"); f != "" {
				files = append(files, f)
			}
		}
	})

	sort.Strings(files)

	return files
}

// sensor is one macro invocation grouped into a family for reporting.
type sensor struct {
	Name   string
	Params map[string]string
}

// family groups related macro tags under one report heading. Substrings are
// checked in order; the first family that matches a tag claims it.
type family struct {
	Label      string
	Substrings []string
}

var sensorFamilies = []family{
	{Label: "Cameras", Substrings: []string{"camera", "monocular"}},
	{Label: "LiDARs", Substrings: []string{"hesai", "velodyne", "pandar", "lidar", "livox", "vls", "vlp"}},
	{Label: "IMU/GNSS", Substrings: []string{"imu", "gnss"}},
	{Label: "Radars", Substrings: []string{"radar"}},
}

// familyLabel matches on the macro tag first, falling back to the sensor
// name; the Velodyne macros (VLP-16, VLS-128) carry the family only in the
// tag while generic macros carry it only in the name.
func familyLabel(tag, name string) string {
	tag = strings.ToLower(tag)
	name = strings.ToLower(name)

	for _, f := range sensorFamilies {
		for _, sub := range f.Substrings {
			if strings.Contains(tag, sub) || strings.Contains(name, sub) {
				return f.Label
			}
		}
	}

	return ""
}

// sensorsByFamily buckets every recognized macro invocation by family,
// sorted by sensor name within each bucket.
func sensorsByFamily(root *Element) map[string][]sensor {
	byFamily := make(map[string][]sensor)

	root.walk(func(e *Element) {
		if e.XMLName.Local == "include" {
			return
		}

		label := familyLabel(e.XMLName.Local, e.Attr("name"))
		if label == "" {
			return
		}

		s := sensor{
			Name:   e.Attr("name"),
			Params: make(map[string]string, len(e.Attrs)),
		}
		for _, a := range e.Attrs {
			s.Params[a.Name.Local] = a.Value
		}

		byFamily[label] = append(byFamily[label], s)
	})

	for label := range byFamily {
		sort.Slice(byFamily[label], func(i, j int) bool {
			return byFamily[label][i].Name < byFamily[label][j].Name
		})
	}

	return byFamily
}
