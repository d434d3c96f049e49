// Package save persists a manifest of generated suite files so a later run
// can verify that regeneration is byte-for-byte deterministic.
package save

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fxamacker/cbor/v2"
	log "github.com/sirupsen/logrus"
	"github.com/zeebo/blake3"
)

const manifestFileName = "manifest.generated.cbor"

// Entry describes one written suite file.
type Entry struct {
	File   string
	Rows   int
	Digest []byte
}

// Manifest records what a generation run produced, keyed by suite base name.
type Manifest struct {
	Entries map[string]Entry
}

// NewManifest returns an empty manifest ready for Record calls.
func NewManifest() *Manifest {
	return &Manifest{Entries: make(map[string]Entry)}
}

// Digest hashes suite content for the manifest.
func Digest(content []byte) []byte {
	sum := blake3.Sum256(content)
	return sum[:]
}

// Record adds one written suite to the manifest.
func (m *Manifest) Record(baseName, file string, rows int, content []byte) {
	m.Entries[baseName] = Entry{
		File:   file,
		Rows:   rows,
		Digest: Digest(content),
	}
}

// Matches reports whether content is what the manifest recorded for
// baseName.
func (m *Manifest) Matches(baseName string, content []byte) bool {
	entry, ok := m.Entries[baseName]
	if !ok {
		return false
	}
	digest := Digest(content)
	if len(digest) != len(entry.Digest) {
		return false
	}
	for i := range digest {
		if digest[i] != entry.Digest[i] {
			return false
		}
	}
	return true
}

func manifestPath(dir string) string {
	return filepath.Join(dir, manifestFileName)
}

// SaveManifest writes the manifest into dir.
func SaveManifest(dir string, m *Manifest) error {
	marshalled, err := cbor.Marshal(m)
	if err != nil {
		log.Errorf("fail to marshal manifest, err is %v", err)
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Errorln(err)
		return err
	}
	path := manifestPath(dir)
	if err := os.WriteFile(path, marshalled, 0600); err != nil {
		log.Errorf("unable to write manifest file %s", path)
		return err
	}
	log.Infof("done wrote manifest file %s", path)
	return nil
}

// LoadManifest reads the manifest from dir.
func LoadManifest(dir string) (*Manifest, error) {
	path := manifestPath(dir)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read manifest file %s: %w", path, err)
	}
	m := NewManifest()
	if err := cbor.Unmarshal(raw, m); err != nil {
		return nil, err
	}
	log.Infof("done read manifest file %s", path)
	return m, nil
}

// DeleteManifest removes the manifest from dir.
func DeleteManifest(dir string) error {
	path := manifestPath(dir)
	if err := os.Remove(path); err != nil {
		log.Errorf("unable to delete manifest file %s", path)
		return err
	}
	log.Infof("done delete manifest file %s", path)
	return nil
}
