// internal/cli/options.go
package cli

import (
	"flag"
	"fmt"
	"strings"

	"protdom/internal/config"
	"protdom/internal/version"
)

// Options holds all CLI flags. Everything except --config overrides the
// corresponding configuration key.
type Options struct {
	ConfigPath string

	Transcripts string
	Output      string
	Format      string
	Assembly    string
	Features    []string

	Debug   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: protein domain annotation reports from UniProt

Resolves gene/protein/UniProt identifiers for Ensembl transcripts and
writes their domain annotations as CSV or XLSX.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Flag-level constraints are checked here; configuration semantics stay
// in config.Validate.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.ConfigPath, "config", "config/config.toml", "TOML configuration file [config/config.toml]")
	fs.StringVar(&opt.Transcripts, "transcripts", "", "transcript list file (.txt or .csv), overrides config")
	fs.StringVar(&opt.Output, "output", "", "output file (.csv, .tsv or .xlsx), overrides config")
	fs.StringVar(&opt.Format, "format", "", "report layout: basic | compact | expanded, overrides config")
	fs.StringVar(&opt.Assembly, "assembly", "", "assembly version: GRCh38 | GRCh37, overrides config")
	var features stringSlice
	fs.Var(&features, "feature", "UniProt feature type to keep (repeatable; none = all), overrides config")
	fs.BoolVar(&opt.Debug, "debug", false, "enable debug logging [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Features = features

	switch opt.Format {
	case "", config.FormatBasic, config.FormatCompact, config.FormatExpanded:
	default:
		return opt, fmt.Errorf("invalid --format %q", opt.Format)
	}
	switch opt.Assembly {
	case "", "GRCh38", "GRCh37":
	default:
		return opt, fmt.Errorf("invalid --assembly %q", opt.Assembly)
	}
	return opt, nil
}

// Apply folds the CLI overrides into a loaded configuration.
func (o Options) Apply(cfg config.Config) config.Config {
	if o.Transcripts != "" {
		cfg.Transcript.File = o.Transcripts
	}
	if o.Output != "" {
		cfg.Output.File = o.Output
	}
	if o.Format != "" {
		cfg.Output.Format = o.Format
	}
	if o.Assembly != "" {
		cfg.Assembly.Version = o.Assembly
	}
	if len(o.Features) > 0 {
		cfg.Domains.Features = o.Features
	}
	if o.Debug {
		cfg.Debug.Enable = true
	}
	return cfg
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
