// Package suite assembles generated rows into the .data test-suite format
// consumed by the target library's test runner.
package suite

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/alliedmodders/mbedtls/pkg/modvec"
)

// Suite is an ordered collection of rows destined for one output file.
type Suite struct {
	// BaseName is the output file name without the .data extension.
	BaseName string
	Rows     []modvec.Row
}

// Render serializes the suite into the .data format: per case a description
// line, an optional depends_on line, and the function line with its
// colon-separated arguments, cases separated by blank lines.
func (s *Suite) Render() []byte {
	var buf bytes.Buffer
	buf.WriteString("# Automatically generated file. Do not edit.\n\n")
	for _, row := range s.Rows {
		buf.WriteString(row.Description)
		buf.WriteByte('\n')
		if len(row.DependsOn) > 0 {
			buf.WriteString("depends_on:")
			buf.WriteString(strings.Join(row.DependsOn, ":"))
			buf.WriteByte('\n')
		}
		buf.WriteString(row.Function)
		for _, arg := range row.Args {
			buf.WriteByte(':')
			buf.WriteString(arg)
		}
		buf.WriteString("\n\n")
	}
	return buf.Bytes()
}

// WriteFile renders the suite into dir and returns the written path.
func (s *Suite) WriteFile(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Errorf("unable to create output dir %s", dir)
		return "", err
	}
	path := filepath.Join(dir, s.BaseName+".data")
	if err := os.WriteFile(path, s.Render(), 0644); err != nil {
		log.Errorf("unable to write suite file %s", path)
		return "", err
	}
	log.Infof("done wrote suite file %s (%d cases)", path, len(s.Rows))
	return path, nil
}
