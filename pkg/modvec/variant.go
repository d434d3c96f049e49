package modvec

import (
	"errors"
	"fmt"

	"github.com/alliedmodders/mbedtls/internal/params"
	"github.com/alliedmodders/mbedtls/pkg/bignum"
)

// ErrNotInvertible reports an operand with no inverse reaching an inverse
// rule. Selection must filter such draws first, so seeing this error means
// a bug in case enumeration and aborts the run.
var ErrNotInvertible = errors.New("modvec: operand has no inverse modulo n")

// Rule computes the expected result for one case. Rules are pure; all
// configuration lives in the Variant.
type Rule func(*Case) (*bignum.Nat, error)

// Variant is one modular operation family, described entirely by
// configuration plus a result rule.
type Variant struct {
	// TestFunction is the test-suite function a row dispatches to.
	TestFunction string
	// TestName prefixes every generated case description.
	TestName string
	// Symbol is the operator rendered into descriptions.
	Symbol string
	// Arity is the operand count, 1 or 2.
	Arity int
	// Style selects the input encoding.
	Style Style
	// PrimeOnly restricts the modulus pool to values vetted as prime.
	PrimeOnly bool
	// DisallowZeroA excludes draws with a ≡ 0 mod n before the rule runs.
	DisallowZeroA bool
	// MontgomeryFormA encodes operand A in Montgomery form. Requires
	// StyleArchSplit.
	MontgomeryFormA bool

	Rule Rule
}

// Row is the externally visible artifact for one test case: a description,
// optional build dependencies, and the colon-separated argument list of the
// .data format. Rows are never mutated after construction.
type Row struct {
	Description string
	DependsOn   []string
	Function    string
	Args        []string
}

func newVariant(v Variant) (*Variant, error) {
	if v.TestFunction == "" || v.Rule == nil {
		return nil, fmt.Errorf("modvec: variant missing test function or rule")
	}
	if v.Arity != 1 && v.Arity != 2 {
		return nil, fmt.Errorf("modvec: variant %s: arity must be 1 or 2, got %d", v.TestFunction, v.Arity)
	}
	if v.MontgomeryFormA && v.Style != StyleArchSplit {
		return nil, fmt.Errorf("modvec: variant %s: Montgomery form requires arch_split input style", v.TestFunction)
	}
	return &v, nil
}

func mustVariant(v Variant) *Variant {
	out, err := newVariant(v)
	if err != nil {
		panic(err)
	}
	return out
}

// variants lists the operation families in emission order.
var variants = []*Variant{
	mustVariant(Variant{
		TestFunction: "mpi_mod_sub",
		TestName:     "mbedtls_mpi_mod_sub",
		Symbol:       "-",
		Arity:        2,
		Style:        StyleFixed,
		Rule:         subRule,
	}),
	mustVariant(Variant{
		TestFunction:  "mpi_mod_inv_non_mont",
		TestName:      "mbedtls_mpi_mod_inv non-Mont. form",
		Symbol:        "^ -1",
		Arity:         1,
		Style:         StyleFixed,
		PrimeOnly:     true,
		DisallowZeroA: true,
		Rule:          invRule,
	}),
	mustVariant(Variant{
		TestFunction:    "mpi_mod_inv_mont",
		TestName:        "mbedtls_mpi_mod_inv Mont. form",
		Symbol:          "^ -1",
		Arity:           1,
		Style:           StyleArchSplit,
		PrimeOnly:       true,
		DisallowZeroA:   true,
		MontgomeryFormA: true,
		Rule:            invMontRule,
	}),
	mustVariant(Variant{
		TestFunction: "mpi_mod_add",
		TestName:     "mbedtls_mpi_mod_add",
		Symbol:       "+",
		Arity:        2,
		Style:        StyleFixed,
		Rule:         addRule,
	}),
}

// Variants returns the registered operation variants in emission order.
func Variants() []*Variant {
	out := make([]*Variant, len(variants))
	copy(out, variants)
	return out
}

// VariantByName looks up a variant by its test function name.
func VariantByName(name string) (*Variant, bool) {
	for _, v := range variants {
		if v.TestFunction == name {
			return v, true
		}
	}
	return nil, false
}

func subRule(c *Case) (*bignum.Nat, error) {
	return new(bignum.Nat).ModSub(c.A(), c.B(), c.N()), nil
}

func addRule(c *Case) (*bignum.Nat, error) {
	return new(bignum.Nat).ModAdd(c.A(), c.B(), c.N()), nil
}

func invRule(c *Case) (*bignum.Nat, error) {
	inv := new(bignum.Nat).ModInverse(c.A(), c.N())
	if inv == nil {
		return nil, ErrNotInvertible
	}
	return inv, nil
}

// invMontRule converts the inverse, not the input, into Montgomery form;
// the operand's own Montgomery encoding happens in ArgA.
func invMontRule(c *Case) (*bignum.Nat, error) {
	inv, err := invRule(c)
	if err != nil {
		return nil, err
	}
	return c.toMontgomery(inv), nil
}

func quoteStr(s string) string {
	return "\"" + s + "\""
}

// row assembles the immutable output row for one case.
func (v *Variant) row(c *Case, count int, deps []string) (Row, error) {
	res, err := v.Rule(c)
	if err != nil {
		return Row{}, fmt.Errorf("%s: case #%d: %w", v.TestFunction, count, err)
	}
	args := make([]string, 0, 5)
	args = append(args, quoteStr(c.ArgA()))
	if v.Arity == 2 {
		args = append(args, quoteStr(c.ArgB()))
	}
	args = append(args, quoteStr(c.ArgN()), quoteStr(c.FormatResult(res)), params.StatusSuccess)
	return Row{
		Description: v.describe(c, count),
		DependsOn:   deps,
		Function:    v.TestFunction,
		Args:        args,
	}, nil
}

func (v *Variant) describe(c *Case, count int) string {
	var desc string
	if v.Arity == 2 {
		desc = fmt.Sprintf("%s #%d %s %s %s mod %s",
			v.TestName, count, c.rawA.Hex(), v.Symbol, c.rawB.Hex(), c.N().Hex())
	} else {
		desc = fmt.Sprintf("%s #%d %s %s mod %s",
			v.TestName, count, c.rawA.Hex(), v.Symbol, c.N().Hex())
	}
	if v.Style == StyleArchSplit {
		desc += fmt.Sprintf(" (%d-bit limbs)", c.BitsPerLimb())
	}
	return desc
}
