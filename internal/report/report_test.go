package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"protdom-core/annot"

	"protdom/internal/config"
	"protdom/internal/pipeline"
)

func sampleResults() []pipeline.Result {
	return []pipeline.Result{
		{
			Record: annot.TranscriptRecord{
				TranscriptID: "ENST00000003084",
				GeneID:       "ENSG00000001626",
				GeneName:     "CFTR",
				ProteinID:    "ENSP00000003084",
				UniProtID:    "P13569",
				UniProtURL:   annot.EntryURL("P13569"),
			},
			Domains: []annot.DomainEntry{
				{Type: "Domain", Description: "ABC transmembrane type-1 1", Start: 81, End: 365},
				{Type: "Domain", Description: "ABC transporter 1", Start: 423, End: 646},
				{Type: "Region", Description: "Disordered", Start: 654, End: 678},
			},
		},
		{
			// resolved but no matching features
			Record: annot.TranscriptRecord{TranscriptID: "ENST00000335295", UniProtID: "P68871"},
		},
	}
}

func cfgWith(format string) config.Config {
	cfg := config.Default()
	cfg.Output.Format = format
	return cfg
}

func TestBasicRowCountIsMaxN1(t *testing.T) {
	tables, err := Build(sampleResults(), cfgWith(config.FormatBasic))
	require.NoError(t, err)
	require.Len(t, tables, 1)

	tbl := tables[0]
	assert.Equal(t, LabelDomains, tbl.Name)
	require.Len(t, tbl.Rows, 4, "3 domains + 1 placeholder row")

	// zero-domain transcript keeps one row with empty domain cells
	last := tbl.Rows[3]
	assert.Equal(t, "ENST00000335295", last[0])
	n := len(last)
	assert.Equal(t, []string{"", "", "", ""}, last[n-4:])
}

func TestBasicColumnOrder(t *testing.T) {
	tables, err := Build(sampleResults(), cfgWith(config.FormatBasic))
	require.NoError(t, err)
	assert.Equal(t, []string{
		LabelTranscriptID, LabelUniProtID, LabelGeneID, LabelGeneName,
		LabelProteinID, LabelUniProtURL,
		LabelFeatureType, LabelDescription, LabelStart, LabelEnd,
	}, tables[0].Columns)
}

func TestBasicHidesDisabledColumns(t *testing.T) {
	cfg := cfgWith(config.FormatBasic)
	cfg.IDs = config.IDs{ShowUniProtID: true}
	tables, err := Build(sampleResults(), cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{
		LabelTranscriptID, LabelUniProtID,
		LabelFeatureType, LabelDescription, LabelStart, LabelEnd,
	}, tables[0].Columns)
	assert.Equal(t, "P13569", tables[0].Rows[0][1])
}

func TestCompactCellShape(t *testing.T) {
	tables, err := Build(sampleResults(), cfgWith(config.FormatCompact))
	require.NoError(t, err)
	require.Len(t, tables, 1)

	tbl := tables[0]
	require.Len(t, tbl.Rows, 2, "one row per transcript")
	assert.Equal(t, LabelDomains, tbl.Columns[len(tbl.Columns)-1])

	cell := tbl.Rows[0][len(tbl.Rows[0])-1]
	records := strings.Split(cell, "|")
	require.Len(t, records, 3, "N records for N domains")
	for _, rec := range records {
		assert.Len(t, strings.Split(rec, ","), 4, "each record carries 4 fields")
	}
	assert.Equal(t, "Feature_type:Domain,Description:ABC transmembrane type-1 1,Start:81,End:365", records[0])

	assert.Empty(t, tbl.Rows[1][len(tbl.Rows[1])-1], "zero domains yields an empty cell")
}

func TestCompactCustomSeparators(t *testing.T) {
	cfg := cfgWith(config.FormatCompact)
	cfg.Output.RecordSep = " ;; "
	cfg.Output.FieldSep = "/"
	tables, err := Build(sampleResults(), cfg)
	require.NoError(t, err)

	cell := tables[0].Rows[0][len(tables[0].Rows[0])-1]
	assert.Len(t, strings.Split(cell, " ;; "), 3)
	assert.Contains(t, cell, "Start:81/End:365")
}

func TestExpandedOneTablePerTranscript(t *testing.T) {
	tables, err := Build(sampleResults(), cfgWith(config.FormatExpanded))
	require.NoError(t, err)
	require.Len(t, tables, 2)

	assert.Equal(t, "ENST00000003084", tables[0].Name)
	assert.Equal(t, "ENST00000335295", tables[1].Name)
	assert.NotContains(t, tables[0].Columns, LabelTranscriptID,
		"transcript ID is the sheet name, not a column")
	assert.Len(t, tables[0].Rows, 3)
	assert.Len(t, tables[1].Rows, 1, "placeholder row for the empty transcript")
}

func TestBuildUnknownFormat(t *testing.T) {
	_, err := Build(sampleResults(), cfgWith("sideways"))
	assert.Error(t, err)
}
