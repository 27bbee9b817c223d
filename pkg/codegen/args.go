// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package codegen

// ArgType tags one kernel argument with the kind of value it carries.
// Debug save/print instrumentation only ever applies to ArgTensor arguments:
// size variables and constexpr values have nothing to dump.
type ArgType int

//go:generate go tool enumer -type=ArgType -trimprefix=Arg -transform=snake -text -yaml -output=gen_argtype_enumer.go args.go

const (
	ArgTensor ArgType = iota
	ArgSizeVar
	ArgConstExpr
	ArgWorkspace
)

// Arg is one kernel-launch argument: the identifier it has in the generated
// wrapper source and its type tag.
type Arg struct {
	Name string  `yaml:"name"`
	Type ArgType `yaml:"type"`
}

// TensorArgs builds an argument list where every name is tensor-typed.
// Convenient for callers that have no signature information: absent type
// tags, the debug printer treats every argument as a tensor.
func TensorArgs(names ...string) []Arg {
	args := make([]Arg, len(names))
	for ii, name := range names {
		args[ii] = Arg{Name: name, Type: ArgTensor}
	}
	return args
}

// Kernel describes one generated kernel as seen by the wrapper: its name and
// ordered launch arguments. It is opaque to the debug printer, which only
// holds it as a reference for the kernel being instrumented.
type Kernel struct {
	Name string `yaml:"name"`
	Args []Arg  `yaml:"args"`
}
