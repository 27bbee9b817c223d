// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package debugprinter injects intermediate tensor value dump/print
// instructions into generated AOT wrapper code.
//
// For each instrumented kernel launch it emits, gated by a Level, "save
// tensor to file" and "print tensor to console" calls before and after the
// launch. The emitted lines are parsed by downstream tooling, so their format
// is fixed and emission order always matches call order.
//
// Example, wiring it into a wrapper generation pass:
//
//	g := codegen.NewGraph(config)
//	printer := debugprinter.NewFromEnv(g)
//	for _, kernel := range kernels {
//		printer.SetPrinterArgs(kernel.Args, kernel.Name, kernel)
//		printer.Instrument(func() {
//			g.WriteKernelLaunch(kernel)
//		})
//	}
package debugprinter

import (
	"slices"
	"strings"

	"github.com/gomlx/exceptions"

	"github.com/gomlx/aotcodegen/pkg/codegen"
)

// Phase tokens written into the generated save/print calls.
const (
	beforeLaunch = "before_launch"
	afterLaunch  = "after_launch"
)

// Manager emits tensor save/print instructions around one kernel launch at a
// time during a wrapper code generation pass. One Manager is meant to be
// reused across every kernel of the pass: call SetPrinterArgs before each
// launch, then Instrument around the launch emission.
//
// The debug level and the filtered kernel names are resolved once, at
// construction, and never change for the lifetime of the Manager.
type Manager struct {
	graph *codegen.Graph
	level Level

	// filteredKernelNames is derived once from
	// Config.FilteredKernelNames: lower-cased, comma-split, trimmed.
	filteredKernelNames []string

	args       []codegen.Arg
	kernelName string
	kernel     *codegen.Kernel
}

// New returns a Manager bound to the given code generation pass, emitting at
// the given debug level.
//
// It panics if level is LevelFilteredPrint while the graph's
// Config.FilteredKernelNames resolves to an empty list: that combination can
// never print anything and indicates contradictory configuration.
func New(graph *codegen.Graph, level Level) *Manager {
	m := &Manager{
		graph:               graph,
		level:               level,
		filteredKernelNames: splitFilteredKernelNames(graph.Config.FilteredKernelNames),
	}
	if m.level == LevelFilteredPrint && len(m.filteredKernelNames) == 0 {
		exceptions.Panicf("debugprinter: level is %s but Config.FilteredKernelNames is empty -- "+
			"no kernel would ever be printed", m.level)
	}
	return m
}

// NewFromEnv is New with the level resolved from the
// AOT_INDUCTOR_DEBUG_INTERMEDIATE_VALUE_PRINTER environment variable.
func NewFromEnv(graph *codegen.Graph) *Manager {
	return New(graph, LevelFromEnv())
}

func splitFilteredKernelNames(configured string) []string {
	if configured == "" {
		return nil
	}
	names := strings.Split(strings.ToLower(configured), ",")
	for ii, name := range names {
		names[ii] = strings.TrimSpace(name)
	}
	return names
}

// SetPrinterArgs points the Manager at the next kernel to instrument,
// overwriting the argument list, kernel name and kernel reference in place.
// The kernel reference is kept opaque, only the name and args are consulted.
func (m *Manager) SetPrinterArgs(args []codegen.Arg, kernelName string, kernel *codegen.Kernel) {
	m.args = args
	m.kernelName = kernelName
	m.kernel = kernel
}

// Level returns the debug level the Manager was constructed with.
func (m *Manager) Level() Level {
	return m.level
}

// Instrument brackets the launch emission with debug save/print instructions:
// the before_launch block is written, then launch() runs, then the
// after_launch block is written. The after_launch block is emitted even if
// launch panics, so every instrumented launch is deterministically closed.
//
// At LevelOff, launch runs with no emission and the graph's instrumented
// kernel registry is left untouched.
func (m *Manager) Instrument(launch func()) {
	if m.level == LevelOff {
		launch()
		return
	}
	m.graph.InstrumentedKernels.Insert(m.kernelName)
	m.emit(beforeLaunch)
	defer m.emit(afterLaunch)
	launch()
}

// emit writes one phase's instrumentation block: saves always, prints unless
// the level is save-only.
func (m *Manager) emit(phase string) {
	m.writeSaveLines(phase)
	if m.level != LevelSave {
		m.writePrintLines(phase)
	}
}

// writeSaveLines emits one save call per tensor argument. Saving is only
// implemented for the ABI-compatible C++ wrapper target; all other targets
// skip silently.
func (m *Manager) writeSaveLines(phase string) {
	config := m.graph.Config
	if !config.CppWrapper {
		// Save for the interpreted target is not implemented yet.
		return
	}
	if !config.AbiCompatible {
		// Save without the stable ABI surface is not implemented yet.
		return
	}
	for _, arg := range m.args {
		if arg.Type != codegen.ArgTensor {
			continue
		}
		m.graph.Wrapper.Writef(`aoti_torch_save_tensor_handle(%s, "%s", "%s", "%s");`,
			arg.Name, arg.Name, phase, m.kernelName)
	}
}

// writePrintLines emits one print call per tensor argument. At
// LevelFilteredPrint only kernels listed in the filter are printed (saving is
// not filtered).
func (m *Manager) writePrintLines(phase string) {
	if m.level == LevelFilteredPrint &&
		!slices.Contains(m.filteredKernelNames, strings.ToLower(m.kernelName)) {
		return
	}
	config := m.graph.Config
	for _, arg := range m.args {
		if arg.Type != codegen.ArgTensor {
			continue
		}
		if config.CppWrapper {
			if !config.AbiCompatible {
				// Print without the stable ABI surface is not implemented yet.
				continue
			}
			m.graph.Wrapper.Writef(`aoti_torch_print_tensor_handle(%s, "%s - %s - %s");`,
				arg.Name, phase, m.kernelName, arg.Name)
		} else {
			m.graph.Wrapper.Writef(`print('%s - %s - %s', %s)`,
				phase, m.kernelName, arg.Name, arg.Name)
		}
	}
}
