// internal/app/app_test.go
package app

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startFakeServices wires both REST backends and reports how many
// requests they saw.
func startFakeServices(t *testing.T) *int {
	t.Helper()
	hits := 0

	uniMux := http.NewServeMux()
	uniMux.HandleFunc("/uniprotkb/search", func(w http.ResponseWriter, r *http.Request) {
		hits++
		if r.URL.Query().Get("query") == "xref:ensembl-ENST00000559488" {
			fmt.Fprint(w, `{"results": [{"primaryAccession": "P12345"}]}`)
			return
		}
		fmt.Fprint(w, `{"results": []}`)
	})
	uniMux.HandleFunc("/uniprotkb/P12345", func(w http.ResponseWriter, _ *http.Request) {
		hits++
		fmt.Fprint(w, `{
			"primaryAccession": "P12345",
			"sequence": {"value": "MABCDEF", "length": 7},
			"features": [
				{"type": "Chain", "description": "whole chain",
				 "location": {"start": {"value": 1}, "end": {"value": 7}}},
				{"type": "Domain", "description": "kinase",
				 "location": {"start": {"value": 2}, "end": {"value": 4}}},
				{"type": "Domain", "description": "SH2",
				 "location": {"start": {"value": 5}, "end": {"value": 7}}}
			],
			"uniProtKBCrossReferences": []
		}`)
	})
	uniSrv := httptest.NewServer(uniMux)

	ensMux := http.NewServeMux()
	ensMux.HandleFunc("/lookup/id/ENST00000559488", func(w http.ResponseWriter, _ *http.Request) {
		hits++
		fmt.Fprint(w, `{
			"id": "ENST00000559488",
			"Parent": "ENSG00000128951",
			"biotype": "protein_coding",
			"Translation": {"id": "ENSP00000452850", "version": 1, "length": 7}
		}`)
	})
	ensMux.HandleFunc("/lookup/id/ENSG00000128951", func(w http.ResponseWriter, _ *http.Request) {
		hits++
		fmt.Fprint(w, `{"id": "ENSG00000128951", "display_name": "DUT", "biotype": "protein_coding"}`)
	})
	ensSrv := httptest.NewServer(ensMux)

	prevUni, prevEns := uniprotBase, ensemblBase
	uniprotBase, ensemblBase = uniSrv.URL, ensSrv.URL
	t.Cleanup(func() {
		uniprotBase, ensemblBase = prevUni, prevEns
		uniSrv.Close()
		ensSrv.Close()
	})
	return &hits
}

func writeRunFiles(t *testing.T, outName, format string) (configPath, outPath string) {
	t.Helper()
	dir := t.TempDir()
	transcripts := filepath.Join(dir, "transcripts.txt")
	require.NoError(t, os.WriteFile(transcripts, []byte("ENST00000559488.4\n"), 0o644))
	outPath = filepath.Join(dir, outName)

	configPath = filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(fmt.Sprintf(`
[transcript]
file = %q

[domains]
features = ["Domain"]

[output]
file = %q
format = %q
`, transcripts, outPath, format)), 0o644))
	return configPath, outPath
}

func TestRunEndToEndBasicCSV(t *testing.T) {
	startFakeServices(t)
	configPath, outPath := writeRunFiles(t, "report.csv", "basic")

	var out, errBuf bytes.Buffer
	code := Run([]string{"--config", configPath}, &out, &errBuf)
	require.Equal(t, 0, code, "stderr: %s", errBuf.String())
	assert.Contains(t, out.String(), "report.csv written (1 transcripts, 0 failed)")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3, "header + one row per Domain feature")
	assert.Contains(t, lines[0], "Transcript_ID,UniProt_ID")
	for _, line := range lines[1:] {
		assert.Contains(t, line, "ENST00000559488")
		assert.Contains(t, line, "P12345")
		assert.Contains(t, line, ",Domain,")
		assert.NotContains(t, line, "Chain", "filtered feature types must not appear")
	}
	assert.Contains(t, lines[1], "DUT")
	assert.Contains(t, lines[1], "ENSP00000452850")
}

func TestRunEndToEndExpandedXLSX(t *testing.T) {
	startFakeServices(t)
	configPath, outPath := writeRunFiles(t, "report.xlsx", "expanded")

	var out, errBuf bytes.Buffer
	code := Run([]string{"--config", configPath}, &out, &errBuf)
	require.Equal(t, 0, code, "stderr: %s", errBuf.String())
	assert.FileExists(t, outPath)
}

func TestRunExpandedCSVFailsBeforeAnyRequest(t *testing.T) {
	hits := startFakeServices(t)
	configPath, _ := writeRunFiles(t, "report.csv", "expanded")

	var out, errBuf bytes.Buffer
	code := Run([]string{"--config", configPath}, &out, &errBuf)
	assert.Equal(t, 2, code)
	assert.Contains(t, errBuf.String(), "expanded")
	assert.Zero(t, *hits, "configuration errors must be raised before any remote call")
}

func TestRunUnmappedTranscriptStillReports(t *testing.T) {
	startFakeServices(t)
	configPath, outPath := writeRunFiles(t, "report.csv", "basic")

	dir := t.TempDir()
	transcripts := filepath.Join(dir, "other.txt")
	require.NoError(t, os.WriteFile(transcripts, []byte("ENST00000999999\n"), 0o644))

	var out, errBuf bytes.Buffer
	code := Run([]string{"--config", configPath, "--transcripts", transcripts}, &out, &errBuf)
	require.Equal(t, 0, code, "stderr: %s", errBuf.String())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2, "header + one placeholder row")
	assert.Contains(t, lines[1], "ENST00000999999")
}

func TestRunVersion(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := Run([]string{"--version"}, &out, &errBuf)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "protdom version")
}

func TestRunBadFlag(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := Run([]string{"--format", "diagonal"}, &out, &errBuf)
	assert.Equal(t, 2, code)
}
