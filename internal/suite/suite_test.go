package suite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alliedmodders/mbedtls/pkg/modvec"
)

func TestRender(t *testing.T) {
	s := &Suite{
		BaseName: "test_suite_bignum_mod.generated",
		Rows: []modvec.Row{
			{
				Description: "mbedtls_mpi_mod_sub #0 7 - 3 mod 5",
				Function:    "mpi_mod_sub",
				Args:        []string{`"7"`, `"3"`, `"5"`, `"4"`, "0"},
			},
			{
				Description: "mbedtls_mpi_mod_inv Mont. form #0 3 ^ -1 mod 7 (32-bit limbs)",
				DependsOn:   []string{"MBEDTLS_HAVE_INT32"},
				Function:    "mpi_mod_inv_mont",
				Args:        []string{`"00000005"`, `"00000007"`, `"00000006"`, "0"},
			},
		},
	}
	expected := "# Automatically generated file. Do not edit.\n" +
		"\n" +
		"mbedtls_mpi_mod_sub #0 7 - 3 mod 5\n" +
		"mpi_mod_sub:\"7\":\"3\":\"5\":\"4\":0\n" +
		"\n" +
		"mbedtls_mpi_mod_inv Mont. form #0 3 ^ -1 mod 7 (32-bit limbs)\n" +
		"depends_on:MBEDTLS_HAVE_INT32\n" +
		"mpi_mod_inv_mont:\"00000005\":\"00000007\":\"00000006\":0\n" +
		"\n"
	assert.Equal(t, expected, string(s.Render()))
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	s := &Suite{
		BaseName: "test_suite_bignum_mod.generated",
		Rows: []modvec.Row{
			{
				Description: "mbedtls_mpi_mod_add #0 1 + 2 mod 5",
				Function:    "mpi_mod_add",
				Args:        []string{`"1"`, `"2"`, `"5"`, `"3"`, "0"},
			},
		},
	}
	path, err := s.WriteFile(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "test_suite_bignum_mod.generated.data"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, s.Render(), content)
}
