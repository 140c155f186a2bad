// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"log/slog"
	"testing"
)

func TestLevelFromFlags(t *testing.T) {
	type data struct {
		vv, v, q bool
		want     slog.Level
	}
	tests := []data{
		{true, false, false, slog.LevelDebug},
		{true, true, true, slog.LevelDebug},
		{false, true, true, slog.LevelInfo},
		{false, false, true, slog.LevelError},
		{false, false, false, slog.LevelWarn},
	}
	for _, test := range tests {
		l := LevelFromFlags(test.vv, test.v, test.q)
		if l != test.want {
			t.Errorf("expected LevelFromFlags(%v, %v, %v) = %v, but got %v", test.vv, test.v, test.q, test.want, l)
		}
	}
}

func TestUserLeveler(t *testing.T) {
	defer func(l slog.Level) { UserLevel = l }(UserLevel)
	UserLevel = slog.LevelError
	if l := (userLeveler{}).Level(); l != slog.LevelError {
		t.Errorf("expected userLeveler level %v, but got %v", slog.LevelError, l)
	}
}
