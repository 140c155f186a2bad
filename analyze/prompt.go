// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analyze

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// The prompts shown by [Prompter.Inputs], in order.
const (
	FirstPrompt  = "Enter the first color (e.g., #ff0000): "
	SecondPrompt = "Enter the second color (e.g., #0000ff): "
	StepsPrompt  = "Enter the number of steps: "
)

// Prompter reads answers to prompts one line at a time.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter returns a new [Prompter] that writes prompts
// to out and reads answers from in.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask writes the prompt and blocks until a line of input arrives,
// returning it without the line terminator. A final line lacking a
// terminator is still returned; an input that ends before any text
// yields an error wrapping [io.ErrUnexpectedEOF].
func (p *Prompter) Ask(prompt string) (string, error) {
	if _, err := io.WriteString(p.out, prompt); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			return "", fmt.Errorf("no answer to %q: %w", strings.TrimSpace(prompt), io.ErrUnexpectedEOF)
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Inputs asks for the first color, the second color, and the number
// of steps, in that order.
func (p *Prompter) Inputs() (first, second, steps string, err error) {
	if first, err = p.Ask(FirstPrompt); err != nil {
		return
	}
	if second, err = p.Ask(SecondPrompt); err != nil {
		return
	}
	steps, err = p.Ask(StepsPrompt)
	return
}
