package save

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAndMatches(t *testing.T) {
	m := NewManifest()
	content := []byte("suite content")
	m.Record("test_suite_bignum_mod.generated", "out/test_suite_bignum_mod.generated.data", 12, content)

	assert.True(t, m.Matches("test_suite_bignum_mod.generated", content))
	assert.False(t, m.Matches("test_suite_bignum_mod.generated", []byte("different content")))
	assert.False(t, m.Matches("unknown", content))
}

func TestDigestIsStable(t *testing.T) {
	a := Digest([]byte("abc"))
	b := Digest([]byte("abc"))
	assert.Equal(t, a, b)
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, Digest([]byte("abd")))
}

func TestSaveLoadDelete(t *testing.T) {
	dir := t.TempDir()
	m := NewManifest()
	m.Record("suite", "suite.data", 3, []byte("rows"))
	require.NoError(t, SaveManifest(dir, m))

	loaded, err := LoadManifest(dir)
	require.NoError(t, err)
	entry, ok := loaded.Entries["suite"]
	require.True(t, ok)
	assert.Equal(t, "suite.data", entry.File)
	assert.Equal(t, 3, entry.Rows)
	assert.True(t, loaded.Matches("suite", []byte("rows")))

	require.NoError(t, DeleteManifest(dir))
	_, err = LoadManifest(dir)
	assert.Error(t, err)
}
