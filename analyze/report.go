// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analyze

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cogentcore.org/contrast/wcag"
	"gopkg.in/yaml.v3"
)

// Format is an output format for a [Report].
type Format int32

const (
	// Text is the line-oriented human readable format.
	Text Format = iota

	// JSON is an indented JSON object.
	JSON

	// YAML is a YAML document.
	YAML
)

var formatNames = []string{"text", "json", "yaml"}

// String returns the name of the format.
func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int32(f))
	}
	return formatNames[f]
}

// Set sets the format from its name, case-insensitively.
func (f *Format) Set(s string) error {
	v, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Type returns the type name used in command line help.
func (f *Format) Type() string {
	return "format"
}

// ParseFormat returns the format with the given name.
func ParseFormat(s string) (Format, error) {
	ls := strings.ToLower(strings.TrimSpace(s))
	for i, nm := range formatNames {
		if nm == ls {
			return Format(i), nil
		}
	}
	return Text, fmt.Errorf("unknown format %q: must be one of %s", s, strings.Join(formatNames, ", "))
}

// Styler decorates report lines, for example with terminal colors.
type Styler interface {

	// Success decorates text describing a passing result.
	Success(str string) string

	// Error decorates text describing a failing result.
	Error(str string) string
}

// Verdict returns the final summary line of the report.
func (r *Report) Verdict() string {
	t := strconv.FormatFloat(r.Threshold, 'f', -1, 64)
	if r.BelowThreshold {
		return "There is at least one contrast ratio below " + t + ":1."
	}
	return "All contrast ratios are " + t + ":1 or higher."
}

// Line returns the report line for the given entry.
func (e *Entry) Line() string {
	return fmt.Sprintf("Color %d: %s - Contrast Ratio: %s:1", e.Index, e.Hex, wcag.FormatRatio(e.Ratio))
}

// Write writes the report to w in the given format. The styler is
// only used by [Text] and may be nil.
func (r *Report) Write(w io.Writer, format Format, style Styler) error {
	switch format {
	case Text:
		return r.WriteText(w, style)
	case JSON:
		return r.WriteJSON(w)
	case YAML:
		return r.WriteYAML(w)
	}
	return fmt.Errorf("analyze: unknown format %v", format)
}

// WriteText writes one line per entry followed by the verdict line.
// Passing lines are decorated with [Styler.Success] and failing ones
// with [Styler.Error]; style may be nil for plain output.
func (r *Report) WriteText(w io.Writer, style Styler) error {
	for i := range r.Entries {
		e := &r.Entries[i]
		if _, err := fmt.Fprintln(w, decorate(style, e.Pass(r.Threshold), e.Line())); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, decorate(style, !r.BelowThreshold, r.Verdict()))
	return err
}

// WriteJSON writes the report as an indented JSON object.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	return enc.Encode(r)
}

// WriteYAML writes the report as a YAML document.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

func decorate(style Styler, pass bool, str string) string {
	switch {
	case style == nil:
		return str
	case pass:
		return style.Success(str)
	default:
		return style.Error(str)
	}
}
