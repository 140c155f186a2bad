// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the contrast command line interface.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"cogentcore.org/contrast/analyze"
	"cogentcore.org/contrast/logx"
	"github.com/spf13/cobra"
)

// ErrBelowThreshold is returned in strict mode when at least one
// palette color does not meet the contrast threshold.
var ErrBelowThreshold = errors.New("at least one contrast ratio is below the threshold")

// Config is the configuration information for the contrast cli.
type Config struct {

	// Format is the output format of the report.
	Format analyze.Format

	// NoColor disables colored output.
	NoColor bool

	// Strict makes the command fail if any ratio is below the threshold.
	Strict bool

	// VeryVerbose, Verbose, and Quiet select the log level; see [logx.LevelFromFlags].
	VeryVerbose bool
	Verbose     bool
	Quiet       bool
}

// NewRootCmd returns the root contrast command. Input, output, and
// error streams default to the standard ones and may be replaced with
// [cobra.Command.SetIn], [cobra.Command.SetOut], and [cobra.Command.SetErr].
func NewRootCmd() *cobra.Command {
	c := &Config{}
	cmd := &cobra.Command{
		Use:   "contrast [first-color second-color steps]",
		Short: "Check the contrast of a color gradient against black",
		Long: `contrast interpolates a palette between two #rrggbb colors and reports
the WCAG contrast ratio of each step against black, followed by whether any
step falls below the 7:1 AAA threshold.

With no arguments, the colors and step count are prompted for interactively.`,
		Example:       "  contrast '#ff0000' '#0000ff' 5",
		Args:          noneOrThree,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cmd, c, args)
		},
	}
	f := cmd.Flags()
	f.Var(&c.Format, "format", "output format: text, json, or yaml")
	f.BoolVar(&c.NoColor, "no-color", false, "disable colored output")
	f.BoolVar(&c.Strict, "strict", false, "exit with an error if any contrast ratio is below 7:1")
	f.BoolVar(&c.VeryVerbose, "vv", false, "print debug messages")
	f.BoolVarP(&c.Verbose, "verbose", "v", false, "print informational messages")
	f.BoolVarP(&c.Quiet, "quiet", "q", false, "only print errors")
	return cmd
}

// Run acquires the inputs, either from args or by prompting, and writes
// the contrast report to the command's output.
func Run(cmd *cobra.Command, c *Config, args []string) error {
	logx.UserLevel = logx.LevelFromFlags(c.VeryVerbose, c.Verbose, c.Quiet)
	if c.NoColor {
		logx.UseColor = false
	}
	slog.SetDefault(slog.New(logx.NewHandler(cmd.ErrOrStderr())))

	out := cmd.OutOrStdout()
	var first, second, steps string
	if len(args) == 3 {
		first, second, steps = args[0], args[1], args[2]
	} else {
		// keep structured output parseable
		prompts := out
		if c.Format != analyze.Text {
			prompts = cmd.ErrOrStderr()
		}
		var err error
		first, second, steps, err = analyze.NewPrompter(cmd.InOrStdin(), prompts).Inputs()
		if err != nil {
			return err
		}
	}
	slog.Debug("read inputs", "first", first, "second", second, "steps", steps)

	r, err := analyze.AnalyzeHex(first, second, steps)
	if err != nil {
		return err
	}
	var style analyze.Styler
	if cz := logx.NewColorizer(out); cz.Enabled() {
		style = cz
	}
	if err := r.Write(out, c.Format, style); err != nil {
		return err
	}
	if c.Strict && r.BelowThreshold {
		return ErrBelowThreshold
	}
	return nil
}

// Execute runs the root command with the standard streams.
func Execute() error {
	return NewRootCmd().Execute()
}

func noneOrThree(cmd *cobra.Command, args []string) error {
	if n := len(args); n != 0 && n != 3 {
		return fmt.Errorf("expected no arguments or exactly 3 (first color, second color, steps), got %d", n)
	}
	return nil
}
