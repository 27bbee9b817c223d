// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package debugprinter

import "os"

// Level selects how much intermediate tensor value debug information is
// emitted into the generated wrapper code.
type Level int

//go:generate go tool enumer -type=Level -trimprefix=Level -output=gen_level_enumer.go level.go

const (
	// LevelOff emits nothing: no tensor value is printed or saved.
	LevelOff Level = iota

	// LevelSave saves every intermediate tensor value to individual files.
	// Nothing is printed.
	LevelSave

	// LevelDefaultPrint prints every intermediate tensor value to the
	// console (and also saves, as LevelSave does).
	LevelDefaultPrint

	// LevelFilteredPrint prints intermediate tensor values only for the
	// kernels selected by Config.FilteredKernelNames (saving remains
	// unconditional).
	LevelFilteredPrint
)

// EnvDebugIntermediateValues is the environment variable selecting the debug
// level: "1" for LevelSave, "2" for LevelDefaultPrint, "3" for
// LevelFilteredPrint. Any other value, including unset, means LevelOff.
const EnvDebugIntermediateValues = "AOT_INDUCTOR_DEBUG_INTERMEDIATE_VALUE_PRINTER"

// LevelFromEnv resolves the debug level from EnvDebugIntermediateValues.
// Unrecognized values silently fall back to LevelOff, there is no error path.
func LevelFromEnv() Level {
	switch os.Getenv(EnvDebugIntermediateValues) {
	case "1":
		return LevelSave
	case "2":
		return LevelDefaultPrint
	case "3":
		return LevelFilteredPrint
	}
	return LevelOff
}
