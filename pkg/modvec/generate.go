package modvec

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/alliedmodders/mbedtls/internal/params"
	"github.com/alliedmodders/mbedtls/pkg/bignum"
	"github.com/alliedmodders/mbedtls/pkg/math/arith"
)

type limbSpec struct {
	bits int
	deps []string
}

func (v *Variant) limbSpecs() []limbSpec {
	if v.Style == StyleArchSplit {
		return []limbSpec{
			{bits: params.BitsPerLimb32, deps: []string{params.DepInt32}},
			{bits: params.BitsPerLimb64, deps: []string{params.DepInt64}},
		}
	}
	return []limbSpec{{bits: params.BitsPerLimbFixed}}
}

func (v *Variant) moduli() []*arith.Modulus {
	if v.PrimeOnly {
		return PrimeModuli()
	}
	return GeneralModuli()
}

// ParseOperands converts a hex operand corpus into values, failing on the
// first malformed entry.
func ParseOperands(hexValues []string) ([]*bignum.Nat, error) {
	out := make([]*bignum.Nat, 0, len(hexValues))
	for _, h := range hexValues {
		n, err := new(bignum.Nat).SetHex(h)
		if err != nil {
			return nil, fmt.Errorf("modvec: operand %q: %w", h, err)
		}
		out = append(out, n)
	}
	return out, nil
}

type pendingCase struct {
	c    *Case
	deps []string
}

// enumerate builds every valid case for the variant in deterministic order:
// moduli outer, then limb widths, then operand combinations. Draws excluded
// by DisallowZeroA never make it into the result.
func (v *Variant) enumerate(operands []*bignum.Nat) ([]pendingCase, []int) {
	var cases []pendingCase
	// span boundaries per modulus, for parallel evaluation
	bounds := []int{0}
	for _, m := range v.moduli() {
		for _, spec := range v.limbSpecs() {
			for _, a := range operands {
				if v.DisallowZeroA && new(bignum.Nat).Mod(a, m.Nat()).EqZero() {
					continue
				}
				if v.Arity == 1 {
					cases = append(cases, pendingCase{
						c:    newCase(m, a, nil, spec.bits, v.Style, v.MontgomeryFormA),
						deps: spec.deps,
					})
					continue
				}
				for _, b := range operands {
					cases = append(cases, pendingCase{
						c:    newCase(m, a, b, spec.bits, v.Style, v.MontgomeryFormA),
						deps: spec.deps,
					})
				}
			}
		}
		bounds = append(bounds, len(cases))
	}
	return cases, bounds
}

// Generate computes every row for the variant over the given operands.
// Each (operand, modulus) combination is independent, so evaluation fans
// out per modulus; row order is the enumeration order regardless of
// scheduling. Any rule error aborts the whole run.
func Generate(v *Variant, operands []*bignum.Nat) ([]Row, error) {
	cases, bounds := v.enumerate(operands)
	rows := make([]Row, len(cases))

	var g errgroup.Group
	for i := 0; i+1 < len(bounds); i++ {
		lo, hi := bounds[i], bounds[i+1]
		g.Go(func() error {
			for j := lo; j < hi; j++ {
				row, err := v.row(cases[j].c, j, cases[j].deps)
				if err != nil {
					return err
				}
				rows[j] = row
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}
