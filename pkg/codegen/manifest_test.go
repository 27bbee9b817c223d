// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package codegen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kernels.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadManifest(t *testing.T) {
	path := writeManifest(t, `
kernels:
  - name: matmul_kernel
    args:
      - {name: buf0, type: tensor}
      - {name: buf1, type: tensor}
      - {name: n_elements, type: size_var}
  - name: add_kernel
    args:
      - {name: out_ptr0, type: tensor}
      - {name: BLOCK_SIZE, type: const_expr}
`)
	manifest, err := LoadManifest(path)
	require.NoError(t, err)
	require.Len(t, manifest.Kernels, 2)

	matmul := manifest.Kernels[0]
	assert.Equal(t, "matmul_kernel", matmul.Name)
	require.Len(t, matmul.Args, 3)
	assert.Equal(t, Arg{Name: "buf0", Type: ArgTensor}, matmul.Args[0])
	assert.Equal(t, Arg{Name: "n_elements", Type: ArgSizeVar}, matmul.Args[2])

	add := manifest.Kernels[1]
	assert.Equal(t, Arg{Name: "BLOCK_SIZE", Type: ArgConstExpr}, add.Args[1])
}

func TestLoadManifestErrors(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	// Unknown argument type.
	path := writeManifest(t, `
kernels:
  - name: k0
    args:
      - {name: buf0, type: matrix}
`)
	_, err = LoadManifest(path)
	require.ErrorContains(t, err, "matrix")

	// Unnamed kernel.
	path = writeManifest(t, `
kernels:
  - args: [{name: buf0, type: tensor}]
`)
	_, err = LoadManifest(path)
	require.ErrorContains(t, err, "no name")

	// Unnamed argument.
	path = writeManifest(t, `
kernels:
  - name: k0
    args: [{type: tensor}]
`)
	_, err = LoadManifest(path)
	require.ErrorContains(t, err, "unnamed argument")
}

func TestArgTypeStrings(t *testing.T) {
	assert.Equal(t, "tensor", ArgTensor.String())
	assert.Equal(t, "size_var", ArgSizeVar.String())

	parsed, err := ArgTypeString("workspace")
	require.NoError(t, err)
	assert.Equal(t, ArgWorkspace, parsed)
	_, err = ArgTypeString("matrix")
	require.Error(t, err)
}

func TestTensorArgs(t *testing.T) {
	args := TensorArgs("buf0", "buf1")
	require.Equal(t, []Arg{
		{Name: "buf0", Type: ArgTensor},
		{Name: "buf1", Type: ArgTensor},
	}, args)
}
