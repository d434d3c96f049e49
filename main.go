// Generator for modular bignum test-suite data files. For every registered
// operation variant it enumerates (operand, modulus) combinations from the
// pre-vetted pools, recomputes the expected result independently of the
// library under test, and writes the rows into a .data suite file together
// with a manifest of content digests.
package main

import (
	"crypto/rand"
	"flag"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/alliedmodders/mbedtls/internal/params"
	"github.com/alliedmodders/mbedtls/internal/save"
	"github.com/alliedmodders/mbedtls/internal/suite"
	"github.com/alliedmodders/mbedtls/pkg/math/sample"
	"github.com/alliedmodders/mbedtls/pkg/modvec"
)

const suiteBaseName = "test_suite_bignum_mod.generated"

// buildSuite generates rows for every variant (or just the one selected)
// over the fixed operand corpus plus any requested random draws.
func buildSuite(randomDraws int, only string) (*suite.Suite, error) {
	operands, err := modvec.ParseOperands(modvec.InputValues())
	if err != nil {
		return nil, err
	}
	for i := 0; i < randomDraws; i++ {
		operands = append(operands, sample.Bits(rand.Reader, params.BitsRandomOperand))
	}

	var rows []modvec.Row
	for _, v := range modvec.Variants() {
		if only != "" && v.TestFunction != only {
			continue
		}
		generated, err := modvec.Generate(v, operands)
		if err != nil {
			return nil, err
		}
		log.Infof("generated %d cases for %s", len(generated), v.TestFunction)
		rows = append(rows, generated...)
	}
	return &suite.Suite{BaseName: suiteBaseName, Rows: rows}, nil
}

func main() {
	outDir := flag.String("out", "tests/suites", "output directory for generated .data files")
	only := flag.String("suite", "", "generate only the named test function, e.g. mpi_mod_sub")
	randomDraws := flag.Int("random", 0, "extra random operands per run; nonzero makes output nondeterministic")
	verify := flag.Bool("verify", false, "regenerate and compare against the recorded manifest instead of writing")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	s, err := buildSuite(*randomDraws, *only)
	if err != nil {
		log.Errorln(err)
		os.Exit(1)
	}
	content := s.Render()

	if *verify {
		m, err := save.LoadManifest(*outDir)
		if err != nil {
			log.Errorln(err)
			os.Exit(1)
		}
		if !m.Matches(s.BaseName, content) {
			log.Errorf("suite %s differs from the recorded manifest", s.BaseName)
			os.Exit(1)
		}
		log.Infof("suite %s matches the recorded manifest", s.BaseName)
		return
	}

	path, err := s.WriteFile(*outDir)
	if err != nil {
		os.Exit(1)
	}
	m := save.NewManifest()
	m.Record(s.BaseName, path, len(s.Rows), content)
	if err := save.SaveManifest(*outDir, m); err != nil {
		os.Exit(1)
	}
}
