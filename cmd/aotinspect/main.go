// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// aotinspect generates debug-instrumented AOT wrapper code for the kernels
// listed in a YAML manifest, useful for checking what a given debug level
// would emit before running a real compilation.
//
// Usage:
//
//	aotinspect [flags] kernels.yaml
//
// The debug level is taken from the AOT_INDUCTOR_DEBUG_INTERMEDIATE_VALUE_PRINTER
// environment variable, and can be overridden with -debug_level.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"

	"github.com/gomlx/aotcodegen/pkg/codegen"
	"github.com/gomlx/aotcodegen/pkg/codegen/debugprinter"
	"github.com/gomlx/aotcodegen/pkg/support/sets"
)

var (
	flagDebugLevel = flag.String("debug_level", "", "Debug level override: one of Off, Save, DefaultPrint or "+
		"FilteredPrint (case insensitive). If empty, the level is resolved from the "+
		debugprinter.EnvDebugIntermediateValues+" environment variable.")
	flagFilteredKernels = flag.String("filtered_kernels", "", "Comma-separated, case-insensitive list of kernel "+
		"names to print at the FilteredPrint level. Required when that level is selected.")
	flagCppWrapper = flag.Bool("cpp_wrapper", true, "Generate for the C++ wrapper target. If false, the "+
		"interpreted target is used instead.")
	flagAbiCompatible = flag.Bool("abi_compatible", true, "Emit only stable-ABI runtime calls "+
		"(aoti_torch_* tensor-handle entry points). Only meaningful with -cpp_wrapper.")
	flagOutput = flag.String("output", "", "File to write the generated wrapper code to. "+
		"If empty, the code is written to stdout.")
	flagReport = flag.Bool("report", false, "Print a per-kernel instrumentation report to stderr.")
)

func main() {
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		klog.Errorf("Missing kernel manifest to read from. See 'aotinspect -help'.")
		os.Exit(1)
	}
	if len(args) > 1 {
		klog.Errorf("Too many arguments. See 'aotinspect -help'.")
		os.Exit(1)
	}
	generate(args[0])
}

func resolveLevel() debugprinter.Level {
	if *flagDebugLevel == "" {
		return debugprinter.LevelFromEnv()
	}
	level, err := debugprinter.LevelString(*flagDebugLevel)
	if err != nil {
		klog.Exitf("Invalid -debug_level %q, valid values are %v.", *flagDebugLevel, debugprinter.LevelStrings())
	}
	return level
}

func generate(manifestPath string) {
	manifest := must.M1(codegen.LoadManifest(manifestPath))
	g := codegen.NewGraph(&codegen.Config{
		CppWrapper:          *flagCppWrapper,
		AbiCompatible:       *flagAbiCompatible,
		FilteredKernelNames: *flagFilteredKernels,
	})
	printer := debugprinter.New(g, resolveLevel())

	type kernelRow struct {
		name                     string
		tensorArgs, linesEmitted int
	}
	rows := make([]kernelRow, 0, len(manifest.Kernels))
	for _, kernel := range manifest.Kernels {
		tensorArgs := 0
		for _, arg := range kernel.Args {
			if arg.Type == codegen.ArgTensor {
				tensorArgs++
			}
		}
		linesBefore := g.Wrapper.Len()
		printer.SetPrinterArgs(kernel.Args, kernel.Name, kernel)
		printer.Instrument(func() {
			g.WriteKernelLaunch(kernel)
		})
		rows = append(rows, kernelRow{
			name:         kernel.Name,
			tensorArgs:   tensorArgs,
			linesEmitted: g.Wrapper.Len() - linesBefore,
		})
	}

	code := g.Wrapper.String()
	if *flagOutput == "" {
		fmt.Print(code)
	} else {
		must.M(os.WriteFile(*flagOutput, []byte(code), 0o644))
	}

	if !*flagReport {
		return
	}
	table := newPlainTable().Headers("Kernel", "Tensor Args", "Lines")
	for _, row := range rows {
		table.Row(row.name, strconv.Itoa(row.tensorArgs), strconv.Itoa(row.linesEmitted))
	}
	fmt.Fprintln(os.Stderr, table.Render())
	fmt.Fprintf(os.Stderr, "Level %s: generated %s of wrapper code for %d kernels, %d instrumented: %v\n",
		printer.Level(), humanize.Bytes(uint64(len(code))), len(manifest.Kernels),
		len(g.InstrumentedKernels), sets.Sorted(g.InstrumentedKernels))
}

var (
	headerRowStyle = lipgloss.NewStyle().Reverse(true).Padding(0, 2, 0, 2).Align(lipgloss.Center)
	rowStyle       = lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)
)

func newPlainTable() *lgtable.Table {
	return lgtable.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == 1 {
				return headerRowStyle
			}
			return rowStyle
		})
}
