// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/multiplace/matrix"
)

// TestOptions_LastWriterWins checks that later options override earlier ones.
func TestOptions_LastWriterWins(t *testing.T) {
	m, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	require.NoError(t, err)
	assert.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)

	m, err = matrix.NewDense(1, 1, matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	assert.NoError(t, m.Set(0, 0, math.NaN()))
}

// TestOptions_NilIgnored checks that nil options are skipped.
func TestOptions_NilIgnored(t *testing.T) {
	m, err := matrix.NewDense(1, 1, nil, matrix.WithAllowNegInf(), nil)
	require.NoError(t, err)
	assert.NoError(t, m.Set(0, 0, math.Inf(-1)))
	assert.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf, "+Inf stays rejected")
}

// TestOptions_Defaults pins the documented defaults.
func TestOptions_Defaults(t *testing.T) {
	assert.True(t, matrix.DefaultValidateNaNInf)
	assert.False(t, matrix.DefaultAllowNegInf)

	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	assert.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
}
