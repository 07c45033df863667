// Package compiler orchestrates a full calibration-to-xacro build: it loads
// the main calibration, partitions its transformations into isolated sensors
// and joint units, renders the aggregate description plus one description per
// unit, and writes everything in a single pass once every input has compiled.
package compiler

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"text/template"

	"xacro-compiler/internal/calibration"
	"xacro-compiler/internal/diagnostic"
	"xacro-compiler/internal/link"
	"xacro-compiler/internal/macro"
)

// Well-known input and output file names.
const (
	// MainCalibrationFile is the calibration describing sensors mounted
	// directly on the vehicle base.
	MainCalibrationFile = "sensors_calibration.yaml"

	aggregateTemplateFile = "sensors.xacro.template"
	unitTemplateFile      = "sensor_unit.xacro.template"

	aggregateOutputFile = "sensors.xacro"

	// unitCalibrationSuffix joined to a unit's name gives the file holding
	// the unit's own calibration.
	unitCalibrationSuffix = "_calibration.yaml"
)

// Config holds the directories and naming a compilation run needs.
type Config struct {
	// TemplateDir holds the aggregate and unit xacro templates.
	TemplateDir string
	// CalibrationDir holds the main calibration and one calibration file
	// per joint unit.
	CalibrationDir string
	// OutputDir receives the generated xacro files.
	OutputDir string
	// ProjectName is the description package the generated files resolve
	// their config directory against.
	ProjectName string
}

// Compiler runs one compilation at a time. State accumulated during a run
// (include set, buffered files, diagnostics) is reset by Run, so a Compiler
// can be reused.
type Compiler struct {
	cfg Config

	diags *diagnostic.Diagnostics

	// includes collects every include reference required so far, across the
	// aggregate pass and all unit passes. Rendered sorted.
	includes map[string]struct{}

	files []GeneratedFile
}

// New creates a Compiler for the given configuration.
func New(cfg Config) *Compiler {
	return &Compiler{cfg: cfg}
}

// Diagnostics returns the advisory notices collected by the last Run.
func (c *Compiler) Diagnostics() *diagnostic.Diagnostics {
	return c.diags
}

// unitRef is a joint unit discovered in the main calibration, carrying what
// the aggregate template and the unit compilation both need.
type unitRef struct {
	BaseFrame  string
	ChildFrame string
	MacroName  string
	Name       string
}

// Run compiles the calibration directory into xacro files. No output is
// written unless every input loads and renders; a failing unit leaves the
// output directory untouched.
func (c *Compiler) Run() error {
	c.diags = &diagnostic.Diagnostics{}
	c.includes = make(map[string]struct{})
	c.files = nil

	aggregateTmpl, err := c.loadTemplate(aggregateTemplateFile)
	if err != nil {
		return err
	}

	unitTmpl, err := c.loadTemplate(unitTemplateFile)
	if err != nil {
		return err
	}

	root, err := calibration.LoadFile(filepath.Join(c.cfg.CalibrationDir, MainCalibrationFile))
	if err != nil {
		return fmt.Errorf("loading main calibration: %w", err)
	}

	calib, err := calibration.New(root, c.diags)
	if err != nil {
		return fmt.Errorf("parsing main calibration: %w", err)
	}

	var (
		units       []unitRef
		invocations []string
	)

	for _, t := range calib.Transforms {
		kind := link.Classify(t.Type, t.ChildFrame, c.diags)
		if kind == link.KindJointUnit {
			units = append(units, unitRef{
				BaseFrame:  t.BaseFrame,
				ChildFrame: t.ChildFrame,
				MacroName:  t.Name + "_macro",
				Name:       t.Name,
			})

			continue
		}

		entry := macro.Lookup(kind)
		c.includes[entry.IncludeFile] = struct{}{}
		invocations = append(invocations, entry.Render(t))
	}

	unitIncludes := make([]string, 0, len(units))
	unitCtxs := make([]map[string]string, 0, len(units))

	for _, u := range units {
		unitIncludes = append(unitIncludes, macro.UnitIncludeFile(u.Name))
		unitCtxs = append(unitCtxs, map[string]string{
			"base_frame":  u.BaseFrame,
			"child_frame": u.ChildFrame,
			"macro_name":  u.MacroName,
			"name":        u.Name,
		})
	}

	err = c.render(aggregateTmpl, aggregateOutputFile, map[string]any{
		"default_config_path":          c.defaultConfigPath(),
		"sensor_calibration_yaml_path": "$(arg config_dir)/" + MainCalibrationFile,
		"sensor_units_includes":        unitIncludes,
		"sensor_units":                 unitCtxs,
		"isolated_sensors_includes":    c.sortedIncludes(),
		"isolated_sensors":             invocations,
	})
	if err != nil {
		return err
	}

	for _, u := range units {
		if err := c.compileUnit(unitTmpl, u); err != nil {
			return err
		}
	}

	if err := WriteFiles(c.files, c.cfg.OutputDir); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

// compileUnit loads a joint unit's own calibration and renders the unit's
// xacro file. Units may only carry sensors: a unit nested inside another unit
// is rejected.
func (c *Compiler) compileUnit(tmpl *template.Template, u unitRef) error {
	path := filepath.Join(c.cfg.CalibrationDir, u.Name+unitCalibrationSuffix)

	root, err := calibration.LoadFile(path)
	if err != nil {
		return fmt.Errorf("loading calibration for unit %s: %w", u.Name, err)
	}

	calib, err := calibration.New(root, c.diags)
	if err != nil {
		return fmt.Errorf("parsing calibration for unit %s: %w", u.Name, err)
	}

	var invocations []string

	for _, t := range calib.Transforms {
		kind := link.Classify(t.Type, t.ChildFrame, c.diags)
		if kind == link.KindJointUnit {
			return fmt.Errorf("unit %s: child frame %q resolves to another unit, nested units are not supported",
				u.Name, t.ChildFrame)
		}

		entry := macro.Lookup(kind)
		c.includes[entry.IncludeFile] = struct{}{}
		invocations = append(invocations, entry.Render(t))
	}

	return c.render(tmpl, macro.UnitIncludeFile(u.Name), map[string]any{
		"unit_macro_name":           u.MacroName,
		"default_config_path":       c.defaultConfigPath(),
		"joint_unit_name":           u.Name,
		"current_base_link":         calib.BaseFrame,
		"isolated_sensors_includes": c.sortedIncludes(),
		"isolated_sensors":          invocations,
	})
}

func (c *Compiler) loadTemplate(name string) (*template.Template, error) {
	path := filepath.Join(c.cfg.TemplateDir, name)

	tmpl, err := template.ParseFiles(path)
	if err != nil {
		return nil, fmt.Errorf("loading template %s: %w", name, err)
	}

	return tmpl, nil
}

// render executes tmpl and buffers the result; nothing touches the output
// directory until the whole run has succeeded.
func (c *Compiler) render(tmpl *template.Template, filename string, ctx map[string]any) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return fmt.Errorf("rendering %s: %w", filename, err)
	}

	c.files = append(c.files, GeneratedFile{
		Filename: filename,
		Content:  buf.Bytes(),
	})

	return nil
}

func (c *Compiler) defaultConfigPath() string {
	return fmt.Sprintf("$(find %s)/config", c.cfg.ProjectName)
}

// sortedIncludes snapshots the include set in deterministic order.
func (c *Compiler) sortedIncludes() []string {
	includes := make([]string, 0, len(c.includes))
	for include := range c.includes {
		includes = append(includes, include)
	}

	sort.Strings(includes)

	return includes
}
