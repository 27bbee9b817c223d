// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package sets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	// Sets are created empty.
	s := Make[string](10)
	assert.Len(t, s, 0)

	// Check inserting and recovery.
	s.Insert("matmul_kernel", "add_kernel")
	assert.Len(t, s, 2)
	assert.True(t, s.Has("matmul_kernel"))
	assert.True(t, s.Has("add_kernel"))
	assert.False(t, s.Has("relu_kernel"))

	s2 := MakeWith(7, 5, 7)
	assert.Len(t, s2, 2)
	assert.True(t, s2.Has(5))
	assert.True(t, s2.Has(7))
	assert.False(t, s2.Has(3))

	delete(s, "add_kernel")
	assert.Len(t, s, 1)
	assert.False(t, s.Has("add_kernel"))
}

func TestSorted(t *testing.T) {
	s := MakeWith("c_kernel", "a_kernel", "b_kernel")
	assert.Equal(t, []string{"a_kernel", "b_kernel", "c_kernel"}, Sorted(s))
	assert.Empty(t, Sorted(Make[int]()))
}
