// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package codegen models one ahead-of-time (AOT) wrapper code generation pass:
// the target configuration, the kernels being launched, and the growing buffer
// of generated wrapper source.
//
// The wrapper is the host-side code that binds buffers and launches the
// compiled kernels. Package debugprinter brackets each launch emitted here
// with tensor save/print instrumentation, gated by a debug level.
//
// Code generation for one artifact is single-threaded: a Graph and its
// WrapperCode are not safe for concurrent use.
package codegen

import (
	"strings"

	"github.com/gomlx/aotcodegen/pkg/support/sets"
)

// Config holds the target options of one wrapper code generation pass.
// It is explicit and immutable after construction: nothing here reads global
// state, so two passes with equal configs generate byte-identical output.
type Config struct {
	// CppWrapper selects the C++ ("native") wrapper target. When false the
	// wrapper is generated for the interpreted target, as plain print-style
	// statements.
	CppWrapper bool

	// AbiCompatible restricts emitted runtime calls to the stable ABI
	// surface (the `aoti_torch_*` tensor-handle entry points). The
	// non-ABI-compatible C++ dialect has no debug emission implemented.
	AbiCompatible bool

	// FilteredKernelNames is a comma-separated, case-insensitive list of
	// kernel names. Only used at the "filtered print" debug level; empty
	// means no kernel ever matches.
	FilteredKernelNames string
}

// Graph is the mutable state of one wrapper code generation pass.
type Graph struct {
	Config  *Config
	Wrapper *WrapperCode

	// InstrumentedKernels collects the names of every kernel whose launch
	// was bracketed with debug save/print instructions.
	InstrumentedKernels sets.Set[string]
}

// NewGraph returns an empty code generation pass for the given configuration.
func NewGraph(config *Config) *Graph {
	return &Graph{
		Config:              config,
		Wrapper:             &WrapperCode{},
		InstrumentedKernels: sets.Make[string](),
	}
}

// WriteKernelLaunch emits the launch call for the kernel, in the dialect
// selected by the Config. The full launch sequence (grid sizing, stream
// binding) belongs to the compiler driving this package; this is the plain
// call form used by the inspection tool and tests.
func (g *Graph) WriteKernelLaunch(kernel *Kernel) {
	names := make([]string, 0, len(kernel.Args))
	for _, arg := range kernel.Args {
		names = append(names, arg.Name)
	}
	if g.Config.CppWrapper {
		g.Wrapper.Writef("%s(%s);", kernel.Name, strings.Join(names, ", "))
	} else {
		g.Wrapper.Writef("%s(%s)", kernel.Name, strings.Join(names, ", "))
	}
}
