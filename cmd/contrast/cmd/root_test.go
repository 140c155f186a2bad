// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"cogentcore.org/contrast/analyze"
	"cogentcore.org/contrast/colors"
	"cogentcore.org/contrast/logx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	defer func(l slog.Level, u bool, d *slog.Logger) {
		logx.UserLevel, logx.UseColor = l, u
		slog.SetDefault(d)
	}(logx.UserLevel, logx.UseColor, slog.Default())

	var out, errb bytes.Buffer
	c := NewRootCmd()
	c.SetIn(strings.NewReader(stdin))
	c.SetOut(&out)
	c.SetErr(&errb)
	c.SetArgs(append([]string{}, args...)) // nil would make cobra read os.Args
	err = c.Execute()
	return out.String(), errb.String(), err
}

func TestInteractive(t *testing.T) {
	out, _, err := execute(t, "#000000\n#ffffff\n2\n")
	require.NoError(t, err)
	assert.Equal(t, analyze.FirstPrompt+analyze.SecondPrompt+analyze.StepsPrompt+
		`Color 1: #000000 - Contrast Ratio: 1.00:1
Color 2: #ffffff - Contrast Ratio: 21.00:1
There is at least one contrast ratio below 7:1.
`, out)
}

func TestInteractiveJSON(t *testing.T) {
	out, stderr, err := execute(t, "#ff0000\n#0000ff\n3\n", "--format", "json")
	require.NoError(t, err)
	var r analyze.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "#ff0000", r.First)
	assert.Len(t, r.Entries, 3)
	assert.Equal(t, analyze.FirstPrompt+analyze.SecondPrompt+analyze.StepsPrompt, stderr)
}

func TestInteractiveYAML(t *testing.T) {
	out, _, err := execute(t, "#ffffff\n#ffffff\n2\n", "--format", "yaml")
	require.NoError(t, err)
	var r analyze.Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.False(t, r.BelowThreshold)
	assert.NotContains(t, out, "Enter the")
}

func TestBatch(t *testing.T) {
	out, _, err := execute(t, "", "#FFFFFF", "#ffffff", "3", "--no-color")
	require.NoError(t, err)
	assert.Equal(t, `Color 1: #ffffff - Contrast Ratio: 21.00:1
Color 2: #ffffff - Contrast Ratio: 21.00:1
Color 3: #ffffff - Contrast Ratio: 21.00:1
All contrast ratios are 7:1 or higher.
`, out)
}

func TestBatchJSON(t *testing.T) {
	out, _, err := execute(t, "", "--format", "json", "#ff0000", "#0000ff", "3")
	require.NoError(t, err)
	var r analyze.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, 3, r.Steps)
	assert.True(t, r.BelowThreshold)
	require.Len(t, r.Entries, 3)
	assert.Equal(t, "#800080", r.Entries[1].Hex)
}

func TestInvalidInputs(t *testing.T) {
	out, _, err := execute(t, "", "#ff00", "#0000ff", "3")
	assert.ErrorIs(t, err, colors.ErrInvalidColorFormat)
	assert.Empty(t, out)

	out, _, err = execute(t, "#ff0000\n#0000ff\nabc\n")
	assert.ErrorIs(t, err, analyze.ErrInvalidStepCount)
	assert.Equal(t, analyze.FirstPrompt+analyze.SecondPrompt+analyze.StepsPrompt, out)

	_, _, err = execute(t, "", "#ff0000", "#0000ff")
	assert.ErrorContains(t, err, "got 2")

	_, _, err = execute(t, "", "--format", "xml", "#ff0000", "#0000ff", "3")
	assert.Error(t, err)
}

func TestStrict(t *testing.T) {
	_, _, err := execute(t, "", "--strict", "#000000", "#ffffff", "2")
	assert.ErrorIs(t, err, ErrBelowThreshold)

	_, _, err = execute(t, "", "--strict", "#ffffff", "#eeeeee", "4")
	assert.NoError(t, err)
}

func TestDebugLogging(t *testing.T) {
	_, stderr, err := execute(t, "", "--vv", "#000000", "#ffffff", "2")
	require.NoError(t, err)
	assert.Contains(t, stderr, `msg="generated palette"`)
	assert.Contains(t, stderr, "steps=2")

	_, stderr, err = execute(t, "", "#000000", "#ffffff", "2")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}
