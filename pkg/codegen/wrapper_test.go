// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapperCode(t *testing.T) {
	w := &WrapperCode{}
	assert.Zero(t, w.Len())
	assert.Equal(t, "", w.String())

	w.WriteLine("void run() {")
	w.Indent()
	w.Writef("%s(%s);", "add_kernel", "buf0")
	w.Unindent()
	w.WriteLine("}")

	require.Equal(t, []string{
		"void run() {",
		"    add_kernel(buf0);",
		"}",
	}, w.Lines())
	assert.Equal(t, "void run() {\n    add_kernel(buf0);\n}\n", w.String())

	// Unindenting below zero is ignored.
	w.Unindent()
	w.WriteLine("tail")
	assert.Equal(t, "tail", w.Lines()[3])
}

func TestWrapperCodeLinesIsACopy(t *testing.T) {
	w := &WrapperCode{}
	w.WriteLine("a")
	lines := w.Lines()
	lines[0] = "mutated"
	assert.Equal(t, []string{"a"}, w.Lines())
}

func TestWriteKernelLaunch(t *testing.T) {
	kernel := &Kernel{
		Name: "matmul_kernel",
		Args: []Arg{
			{Name: "buf0", Type: ArgTensor},
			{Name: "n", Type: ArgSizeVar},
		},
	}

	g := NewGraph(&Config{CppWrapper: true, AbiCompatible: true})
	g.WriteKernelLaunch(kernel)
	require.Equal(t, []string{"matmul_kernel(buf0, n);"}, g.Wrapper.Lines())

	g = NewGraph(&Config{})
	g.WriteKernelLaunch(kernel)
	require.Equal(t, []string{"matmul_kernel(buf0, n)"}, g.Wrapper.Lines())
}
