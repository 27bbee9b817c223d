// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package codegen

import (
	"fmt"
	"strings"

	"k8s.io/klog/v2"
)

// WrapperCode accumulates generated wrapper source one line at a time.
// Lines come out exactly in the order they were written: generated source
// must be reproducible, and downstream tooling parses it.
//
// The zero value is an empty buffer ready for use.
type WrapperCode struct {
	lines  []string
	indent int
}

// IndentSpaces used per indentation level in the generated source.
const IndentSpaces = 4

// WriteLine appends one line at the current indentation level.
func (w *WrapperCode) WriteLine(line string) {
	if w.indent > 0 {
		line = strings.Repeat(" ", w.indent*IndentSpaces) + line
	}
	w.lines = append(w.lines, line)
}

// Writef formats and appends one line at the current indentation level.
func (w *WrapperCode) Writef(format string, args ...any) {
	w.WriteLine(fmt.Sprintf(format, args...))
}

// Indent increases the indentation of subsequent lines by one level.
func (w *WrapperCode) Indent() {
	w.indent++
}

// Unindent decreases the indentation of subsequent lines by one level.
func (w *WrapperCode) Unindent() {
	if w.indent == 0 {
		klog.Warningf("WrapperCode.Unindent() called on an already unindented buffer!?")
		return
	}
	w.indent--
}

// Len returns the number of lines written so far.
func (w *WrapperCode) Len() int {
	return len(w.lines)
}

// Lines returns a copy of the lines written so far.
func (w *WrapperCode) Lines() []string {
	lines := make([]string, len(w.lines))
	copy(lines, w.lines)
	return lines
}

// String returns the generated source, one line each, with a trailing newline
// if any line was written.
func (w *WrapperCode) String() string {
	if len(w.lines) == 0 {
		return ""
	}
	return strings.Join(w.lines, "\n") + "\n"
}
