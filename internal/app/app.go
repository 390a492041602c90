// internal/app/app.go
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"protdom-core/ensembl"
	"protdom-core/uniprot"

	"protdom/internal/cli"
	"protdom/internal/config"
	"protdom/internal/input"
	"protdom/internal/pipeline"
	"protdom/internal/report"
	"protdom/internal/resolve"
	"protdom/internal/version"
	"protdom/internal/writers"
)

// Service roots, swapped out by tests.
var (
	uniprotBase = uniprot.DefaultBaseURL
	ensemblBase = "" // "" = pick by assembly version
)

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("protdom")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(stdout, "protdom version %s\n", version.Version)
		return 0
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	cfg = opts.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	log := newLogger(stderr, cfg.Debug.Enable)

	ids, err := input.Load(cfg)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	log.Debug().Int("transcripts", len(ids)).Str("file", cfg.Transcript.File).Msg("loaded transcript list")

	ens, err := newEnsembl(cfg.Assembly.Version)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	uni := uniprot.NewWithBase(uniprotBase)

	runner := pipeline.Runner{
		Resolver: resolve.Resolver{Genes: ens, UniProt: uni, Show: cfg.IDs, Log: log},
		Source:   uni,
		Filter:   uniprot.NewFeatureFilter(cfg.Domains.Features),
		Log:      log,
	}
	results := runner.Run(ctx, ids)

	tables, err := report.Build(results, cfg)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	if err := writers.Write(cfg.Output.File, tables); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	_, _ = fmt.Fprintf(stdout, "%s written (%d transcripts, %d failed)\n", cfg.Output.File, len(results), failed)
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func newEnsembl(assembly string) (*ensembl.Client, error) {
	if ensemblBase != "" {
		return ensembl.NewWithBase(ensemblBase), nil
	}
	return ensembl.New(assembly)
}

func newLogger(w io.Writer, debug bool) zerolog.Logger {
	lvl := zerolog.WarnLevel
	if debug {
		lvl = zerolog.DebugLevel
	}
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	return zerolog.New(cw).Level(lvl).With().Timestamp().Logger()
}
