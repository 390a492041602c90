// internal/resolve/resolver.go
package resolve

import (
	"context"

	"github.com/rs/zerolog"

	"protdom-core/annot"

	"protdom/internal/config"
)

// GeneLookup is the slice of the Ensembl client the resolver needs.
type GeneLookup interface {
	TranscriptParent(ctx context.Context, transcriptID string) (string, error)
	TranscriptProteinID(ctx context.Context, transcriptID string) (string, error)
	GeneSymbol(ctx context.Context, geneID string) (string, error)
}

// AccessionMapper is the slice of the UniProt client the resolver needs.
type AccessionMapper interface {
	MapEnsembl(ctx context.Context, ensemblID string) (string, error)
}

// Resolver translates an Ensembl transcript ID into a TranscriptRecord.
// Gene and protein sub-lookups are skipped when their columns are hidden,
// so no network time is spent on fields the report will not show. The
// UniProt mapping always runs: the domain fetch depends on it.
type Resolver struct {
	Genes   GeneLookup
	UniProt AccessionMapper
	Show    config.IDs
	Log     zerolog.Logger
}

// Resolve builds the record for one transcript. Unresolved fields stay
// empty; a missing mapping is not an error. Service errors are surfaced
// to the caller untouched.
func (r Resolver) Resolve(ctx context.Context, transcriptID string) (annot.TranscriptRecord, error) {
	rec := annot.TranscriptRecord{TranscriptID: transcriptID}

	if r.Show.ShowGeneID || r.Show.ShowGeneName {
		geneID, err := r.Genes.TranscriptParent(ctx, transcriptID)
		if err != nil {
			return rec, err
		}
		if r.Show.ShowGeneID {
			rec.GeneID = geneID
		}
		if r.Show.ShowGeneName && geneID != "" {
			name, err := r.Genes.GeneSymbol(ctx, geneID)
			if err != nil {
				return rec, err
			}
			rec.GeneName = name
		}
	}

	if r.Show.ShowProteinID {
		proteinID, err := r.Genes.TranscriptProteinID(ctx, transcriptID)
		if err != nil {
			return rec, err
		}
		rec.ProteinID = proteinID
	}

	accession, err := r.UniProt.MapEnsembl(ctx, transcriptID)
	if err != nil {
		return rec, err
	}
	rec.UniProtID = accession
	if r.Show.ShowUniProtURL && accession != "" {
		rec.UniProtURL = annot.EntryURL(accession)
	}

	r.Log.Debug().
		Str("transcript", transcriptID).
		Str("gene", rec.GeneID).
		Str("uniprot", rec.UniProtID).
		Msg("resolved")
	return rec, nil
}
