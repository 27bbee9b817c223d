// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package codegen

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Manifest lists the kernels of one compiled artifact, as consumed by the
// aotinspect tool. Example:
//
//	kernels:
//	  - name: matmul_kernel
//	    args:
//	      - {name: buf0, type: tensor}
//	      - {name: n_elements, type: size_var}
type Manifest struct {
	Kernels []*Kernel `yaml:"kernels"`
}

// LoadManifest reads and parses a YAML kernel manifest.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read kernel manifest from %q", path)
	}
	manifest := &Manifest{}
	if err := yaml.Unmarshal(data, manifest); err != nil {
		return nil, errors.Wrapf(err, "failed to parse kernel manifest %q", path)
	}
	for ii, kernel := range manifest.Kernels {
		if kernel.Name == "" {
			return nil, errors.Errorf("kernel #%d in manifest %q has no name", ii, path)
		}
		for _, arg := range kernel.Args {
			if arg.Name == "" {
				return nil, errors.Errorf("kernel %q in manifest %q has an unnamed argument", kernel.Name, path)
			}
		}
	}
	return manifest, nil
}
