// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Report layouts.
const (
	FormatBasic    = "basic"
	FormatCompact  = "compact"
	FormatExpanded = "expanded"
)

// Error is a fatal configuration problem. It is always raised before any
// remote call is attempted.
type Error struct {
	Msg string
}

func (e *Error) Error() string { return "config: " + e.Msg }

func errorf(format string, a ...any) *Error {
	return &Error{Msg: fmt.Sprintf(format, a...)}
}

type Config struct {
	Transcript Transcript `toml:"transcript"`
	Assembly   Assembly   `toml:"assembly"`
	IDs        IDs        `toml:"ids"`
	Domains    Domains    `toml:"domains"`
	Output     Output     `toml:"output"`
	Debug      Debug      `toml:"debug"`
}

type Transcript struct {
	File      string `toml:"file"`
	CSVColumn string `toml:"csv_column"`
	CSVSep    string `toml:"csv_sep"`
}

type Assembly struct {
	Version string `toml:"version"`
}

// IDs toggles the optional identifier columns of the report. Hidden
// columns also skip their lookup calls.
type IDs struct {
	ShowGeneID     bool `toml:"show_gene_id"`
	ShowGeneName   bool `toml:"show_gene_name"`
	ShowProteinID  bool `toml:"show_protein_id"`
	ShowUniProtID  bool `toml:"show_uniprot_id"`
	ShowUniProtURL bool `toml:"show_uniprot_url"`
}

// Domains lists the UniProt feature types to keep; empty keeps all.
type Domains struct {
	Features []string `toml:"features"`
}

type Output struct {
	File   string `toml:"file"`
	Format string `toml:"format"`

	// Compact layout separators: FieldSep joins the fields of one domain
	// record, RecordSep joins the records inside the aggregate cell.
	RecordSep string `toml:"record_sep"`
	FieldSep  string `toml:"field_sep"`
}

type Debug struct {
	Enable bool `toml:"enable"`
}

// Default returns the configuration used when a key is absent from the
// TOML file.
func Default() Config {
	return Config{
		Transcript: Transcript{CSVColumn: "Transcript_ID", CSVSep: ","},
		Assembly:   Assembly{Version: "GRCh38"},
		IDs: IDs{
			ShowGeneID:     true,
			ShowGeneName:   true,
			ShowProteinID:  true,
			ShowUniProtID:  true,
			ShowUniProtURL: true,
		},
		Output: Output{Format: FormatBasic, RecordSep: "|", FieldSep: ","},
	}
}

// Load reads a TOML configuration file over the defaults. Validation is a
// separate step so CLI overrides can be applied in between.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errorf("cannot read %s: %v", path, err)
	}
	return cfg, nil
}

var inputExts = map[string]bool{".txt": true, ".csv": true}

// DelimitedExts are the output extensions handled by the single-table
// delimited writer; anything here is incompatible with FormatExpanded.
var DelimitedExts = map[string]bool{".csv": true, ".tsv": true}

var outputExts = map[string]bool{".csv": true, ".tsv": true, ".xlsx": true}

// Validate checks the fatal invariants. Callers must not start any remote
// work before Validate passes.
func (c Config) Validate() error {
	switch c.Assembly.Version {
	case "GRCh37", "GRCh38":
	default:
		return errorf("assembly version %q not supported (GRCh37, GRCh38)", c.Assembly.Version)
	}
	switch c.Output.Format {
	case FormatBasic, FormatCompact, FormatExpanded:
	default:
		return errorf("output format %q not supported (basic, compact, expanded)", c.Output.Format)
	}
	if c.Transcript.File == "" {
		return errorf("transcript file not set")
	}
	if !inputExts[strings.ToLower(filepath.Ext(c.Transcript.File))] {
		return errorf("transcript file %s not supported (only .txt and .csv)", c.Transcript.File)
	}
	if _, err := os.Stat(c.Transcript.File); err != nil {
		return errorf("cannot find transcript file %s", c.Transcript.File)
	}
	if c.Output.File == "" {
		return errorf("output file not set")
	}
	ext := strings.ToLower(filepath.Ext(c.Output.File))
	if !outputExts[ext] {
		return errorf("output file %s not supported (only .csv, .tsv and .xlsx)", c.Output.File)
	}
	if c.Output.Format == FormatExpanded && DelimitedExts[ext] {
		return errorf("delimited output %s cannot hold the expanded layout (one sheet per transcript); use .xlsx", c.Output.File)
	}
	if len(c.Transcript.CSVSep) != 1 {
		return errorf("csv_sep must be a single character, got %q", c.Transcript.CSVSep)
	}
	return nil
}
