// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command contrast reports the contrast ratio against black of each
// color in a gradient between two colors.
package main

import (
	"log/slog"
	"os"

	"cogentcore.org/contrast/cmd/contrast/cmd"
	"cogentcore.org/contrast/logx"
)

func main() {
	logx.SetDefaultLogger()
	if err := cmd.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
