// internal/report/report.go
package report

import (
	"fmt"
	"strconv"
	"strings"

	"protdom-core/annot"

	"protdom/internal/config"
	"protdom/internal/pipeline"
)

// Column labels. LabelDomains doubles as the sheet name of the
// single-table layouts.
const (
	LabelTranscriptID = "Transcript_ID"
	LabelUniProtID    = "UniProt_ID"
	LabelGeneID       = "Gene_ID"
	LabelGeneName     = "Gene_name"
	LabelProteinID    = "Protein_ID"
	LabelUniProtURL   = "UniProt_URL"
	LabelDomains      = "Domains"

	LabelFeatureType = "Feature_type"
	LabelDescription = "Description"
	LabelStart       = "Start"
	LabelEnd         = "End"
)

// Table is one serializable sheet: a name, a header, and string rows.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

var domainColumns = []string{LabelFeatureType, LabelDescription, LabelStart, LabelEnd}

// Build derives the output tables for the configured layout.
func Build(results []pipeline.Result, cfg config.Config) ([]Table, error) {
	switch cfg.Output.Format {
	case config.FormatBasic:
		return []Table{buildBasic(results, cfg.IDs)}, nil
	case config.FormatCompact:
		return []Table{buildCompact(results, cfg)}, nil
	case config.FormatExpanded:
		return buildExpanded(results, cfg.IDs), nil
	default:
		return nil, fmt.Errorf("report: unknown format %q", cfg.Output.Format)
	}
}

// idColumns returns the enabled identifier column labels, in the fixed
// configuration order the original report used.
func idColumns(show config.IDs) []string {
	var cols []string
	if show.ShowUniProtID {
		cols = append(cols, LabelUniProtID)
	}
	if show.ShowGeneID {
		cols = append(cols, LabelGeneID)
	}
	if show.ShowGeneName {
		cols = append(cols, LabelGeneName)
	}
	if show.ShowProteinID {
		cols = append(cols, LabelProteinID)
	}
	if show.ShowUniProtURL {
		cols = append(cols, LabelUniProtURL)
	}
	return cols
}

func idValues(rec annot.TranscriptRecord, show config.IDs) []string {
	var vals []string
	if show.ShowUniProtID {
		vals = append(vals, rec.UniProtID)
	}
	if show.ShowGeneID {
		vals = append(vals, rec.GeneID)
	}
	if show.ShowGeneName {
		vals = append(vals, rec.GeneName)
	}
	if show.ShowProteinID {
		vals = append(vals, rec.ProteinID)
	}
	if show.ShowUniProtURL {
		vals = append(vals, rec.UniProtURL)
	}
	return vals
}

func domainValues(d annot.DomainEntry) []string {
	return []string{d.Type, d.Description, strconv.Itoa(d.Start), strconv.Itoa(d.End)}
}

// domainRows emits one row per domain; a transcript with none still gets
// exactly one row with empty domain cells.
func domainRows(res pipeline.Result, show config.IDs, withTranscriptID bool) [][]string {
	prefix := func() []string {
		var row []string
		if withTranscriptID {
			row = append(row, res.Record.TranscriptID)
		}
		return append(row, idValues(res.Record, show)...)
	}
	if len(res.Domains) == 0 {
		return [][]string{append(prefix(), "", "", "", "")}
	}
	rows := make([][]string, 0, len(res.Domains))
	for _, d := range res.Domains {
		rows = append(rows, append(prefix(), domainValues(d)...))
	}
	return rows
}

// buildBasic: one global table, one row per (transcript, domain) pair.
func buildBasic(results []pipeline.Result, show config.IDs) Table {
	t := Table{
		Name:    LabelDomains,
		Columns: append(append([]string{LabelTranscriptID}, idColumns(show)...), domainColumns...),
	}
	for _, res := range results {
		t.Rows = append(t.Rows, domainRows(res, show, true)...)
	}
	return t
}

// buildCompact: one global table, one row per transcript, all domains
// aggregated into a single cell.
func buildCompact(results []pipeline.Result, cfg config.Config) Table {
	t := Table{
		Name:    LabelDomains,
		Columns: append(append([]string{LabelTranscriptID}, idColumns(cfg.IDs)...), LabelDomains),
	}
	for _, res := range results {
		row := append([]string{res.Record.TranscriptID}, idValues(res.Record, cfg.IDs)...)
		t.Rows = append(t.Rows, append(row, aggregateCell(res.Domains, cfg.Output)))
	}
	return t
}

// aggregateCell serializes domains as label:value records, fields joined
// by FieldSep and records joined by RecordSep.
func aggregateCell(domains []annot.DomainEntry, out config.Output) string {
	records := make([]string, 0, len(domains))
	for _, d := range domains {
		fields := []string{
			LabelFeatureType + ":" + d.Type,
			LabelDescription + ":" + d.Description,
			LabelStart + ":" + strconv.Itoa(d.Start),
			LabelEnd + ":" + strconv.Itoa(d.End),
		}
		records = append(records, strings.Join(fields, out.FieldSep))
	}
	return strings.Join(records, out.RecordSep)
}

// buildExpanded: one table per transcript; the transcript ID becomes the
// sheet name instead of a column.
func buildExpanded(results []pipeline.Result, show config.IDs) []Table {
	tables := make([]Table, 0, len(results))
	for _, res := range results {
		tables = append(tables, Table{
			Name:    res.Record.TranscriptID,
			Columns: append(idColumns(show), domainColumns...),
			Rows:    domainRows(res, show, false),
		})
	}
	return tables
}
