// Package diagnostic collects the non-fatal notices a compile produces:
// inferred sensor types, frames assumed to be joint units, and similar
// advisories. Fatal conditions are ordinary errors and never end up here.
package diagnostic

import "fmt"

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Diagnostic represents a single advisory message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Source identifies which calibration source this relates to (if any).
	Source string
	// Frame identifies which child frame this relates to (if any).
	Frame string
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	prefix := ""
	if d.Source != "" {
		prefix = "[" + d.Source + "] "
	}

	if d.Frame != "" {
		prefix += d.Frame + ": "
	}

	return d.Severity.String() + ": " + prefix + msg
}

// Diagnostics accumulates advisories raised during a compile.
type Diagnostics struct {
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, source, frame string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Source:   source,
		Frame:    frame,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, source, frame string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: SeverityInfo,
		Code:     code,
		Message:  message,
		Source:   source,
		Frame:    frame,
	})
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsEmpty returns true if nothing has been collected.
func (d *Diagnostics) IsEmpty() bool {
	return len(d.Warnings) == 0 && len(d.Infos) == 0
}

// All returns every collected diagnostic, warnings first.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, len(d.Warnings)+len(d.Infos))
	out = append(out, d.Warnings...)
	out = append(out, d.Infos...)

	return out
}
