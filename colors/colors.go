// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides conversion between 6-digit hex color strings
// and [color.RGBA] values.
package colors

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrInvalidColorFormat is returned by [FromHex] for any string that is
// not a '#' followed by exactly six hexadecimal digits.
var ErrInvalidColorFormat = errors.New("invalid color format")

var (
	// Black is pure black, #000000.
	Black = color.RGBA{0, 0, 0, 255}

	// White is pure white, #ffffff.
	White = color.RGBA{255, 255, 255, 255}
)

// FromHex parses the given hex color string of the form #RRGGBB
// (case-insensitive) and returns the resulting opaque color.
// Leading and trailing whitespace is ignored. It returns an error
// wrapping [ErrInvalidColorFormat] for any other input; see
// [MustFromHex] for a version that panics instead.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimSpace(hex)
	if len(hex) != 7 || hex[0] != '#' {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: %w: %q: expected '#' followed by 6 hex digits", ErrInvalidColorFormat, hex)
	}
	for i := 1; i < len(hex); i++ {
		if !isHexDigit(hex[i]) {
			return color.RGBA{}, fmt.Errorf("colors.FromHex: %w: %q: %q is not a hex digit", ErrInvalidColorFormat, hex, hex[i])
		}
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: %w: %w", ErrInvalidColorFormat, err)
	}
	return color.RGBA{
		R: uint8(v >> 16 & 0xff),
		G: uint8(v >> 8 & 0xff),
		B: uint8(v & 0xff),
		A: 255,
	}, nil
}

// MustFromHex parses the given hex color string
// and returns the resulting color. It panics on any
// resulting error; see [FromHex] for a version
// that returns an error.
func MustFromHex(hex string) color.RGBA {
	c, err := FromHex(hex)
	if err != nil {
		panic("colors.MustFromHex: " + err.Error())
	}
	return c
}

// AsHex returns the color as a lowercase #rrggbb string.
// Alpha is ignored.
func AsHex(c color.Color) string {
	if c == nil {
		return "nil"
	}
	r := AsRGBA(c)
	// the sentinel bit forces exactly 7 hex digits, of which the first is dropped
	v := 1<<24 | uint32(r.R)<<16 | uint32(r.G)<<8 | uint32(r.B)
	return "#" + strconv.FormatUint(uint64(v), 16)[1:]
}

// AsRGBA returns the given color as an RGBA color
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func isHexDigit(b byte) bool {
	switch {
	case '0' <= b && b <= '9':
		return true
	case 'a' <= b && b <= 'f':
		return true
	case 'A' <= b && b <= 'F':
		return true
	}
	return false
}
