package modvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alliedmodders/mbedtls/pkg/bignum"
	"github.com/alliedmodders/mbedtls/pkg/math/arith"
)

func nat(x uint64) *bignum.Nat {
	return new(bignum.Nat).SetUint64(x)
}

func TestCaseReducesOperands(t *testing.T) {
	m := arith.ModulusFromUint64(5, true)
	c := newCase(m, nat(7), nat(3), 64, StyleFixed, false)
	assert.Equal(t, uint64(2), c.A().Uint64())
	assert.Equal(t, uint64(3), c.B().Uint64())
	// the encoded argument keeps the drawn value
	assert.Equal(t, "0000000000000007", c.ArgA())
}

func TestHexDigits(t *testing.T) {
	m := arith.ModulusFromUint64(7, true)
	c := newCase(m, nat(1), nil, 64, StyleFixed, false)
	assert.Equal(t, 16, c.hexDigits())

	mersenne61, err := arith.ModulusFromHex("1fffffffffffffff", true)
	require.NoError(t, err)
	c32 := newCase(mersenne61, nat(1), nil, 32, StyleArchSplit, false)
	assert.Equal(t, 16, c32.hexDigits(), "61-bit modulus needs two 32-bit limbs")
}

func TestFormatValuePadding(t *testing.T) {
	m := arith.ModulusFromUint64(7, true)
	c := newCase(m, nat(1), nil, 32, StyleArchSplit, false)
	assert.Equal(t, "00000004", c.FormatResult(nat(4)))
	assert.Equal(t, "00000000", c.FormatResult(nat(0)))
}

func TestArgAMontgomery(t *testing.T) {
	m := arith.ModulusFromUint64(7, true)
	c := newCase(m, nat(3), nil, 32, StyleArchSplit, true)
	// 3 * 2^32 mod 7 = 3 * 4 mod 7 = 5
	assert.Equal(t, "00000005", c.ArgA())
}

func TestStyleString(t *testing.T) {
	assert.Equal(t, "fixed", StyleFixed.String())
	assert.Equal(t, "arch_split", StyleArchSplit.String())
}
