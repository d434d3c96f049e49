package bignum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetHex(t *testing.T) {
	n, err := new(Nat).SetHex("ff")
	require.NoError(t, err)
	assert.Equal(t, uint64(255), n.Uint64())

	n, err = new(Nat).SetHex("")
	require.NoError(t, err)
	assert.True(t, n.EqZero())

	_, err = new(Nat).SetHex("xyz")
	assert.Error(t, err)
}

func TestHex(t *testing.T) {
	assert.Equal(t, "0", new(Nat).Hex())
	assert.Equal(t, "ff", new(Nat).SetUint64(255).Hex())
	assert.Equal(t, "1234567890abcdef", new(Nat).SetUint64(0x1234567890abcdef).Hex())
}

func TestModSubIsNonNegative(t *testing.T) {
	x := new(Nat).SetUint64(3)
	y := new(Nat).SetUint64(7)
	m := new(Nat).SetUint64(5)
	// (3 - 7) mod 5 must come back as the positive residue 1, not -4
	z := new(Nat).ModSub(x, y, m)
	assert.Equal(t, uint64(1), z.Uint64())
}

func TestModAddWraps(t *testing.T) {
	x := new(Nat).SetUint64(7)
	y := new(Nat).SetUint64(3)
	m := new(Nat).SetUint64(5)
	z := new(Nat).ModAdd(x, y, m)
	assert.True(t, z.EqZero())
}

func TestModInverse(t *testing.T) {
	a := new(Nat).SetUint64(3)
	m := new(Nat).SetUint64(7)
	inv := new(Nat).ModInverse(a, m)
	require.NotNil(t, inv)
	assert.Equal(t, uint64(5), inv.Uint64())

	// 2 shares a factor with 4, so no inverse exists
	assert.Nil(t, new(Nat).ModInverse(new(Nat).SetUint64(2), new(Nat).SetUint64(4)))
}

func TestCoprime(t *testing.T) {
	assert.True(t, new(Nat).SetUint64(6).Coprime(new(Nat).SetUint64(35)))
	assert.False(t, new(Nat).SetUint64(6).Coprime(new(Nat).SetUint64(9)))
}

func TestLsh(t *testing.T) {
	one := new(Nat).SetUint64(1)
	assert.Equal(t, uint64(256), new(Nat).Lsh(one, 8).Uint64())
}

func TestProbablyPrime(t *testing.T) {
	mersenne61, err := new(Nat).SetHex("1fffffffffffffff")
	require.NoError(t, err)
	assert.True(t, mersenne61.ProbablyPrime(20))
	assert.False(t, new(Nat).SetUint64(255).ProbablyPrime(20))
}

func TestCloneIsIndependent(t *testing.T) {
	a := new(Nat).SetUint64(10)
	b := a.Clone()
	b.SetUint64(20)
	assert.Equal(t, uint64(10), a.Uint64())
}
