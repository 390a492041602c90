// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"protdom-core/annot"
	"protdom-core/uniprot"
)

// Resolver turns a transcript ID into an identifier record.
type Resolver interface {
	Resolve(ctx context.Context, transcriptID string) (annot.TranscriptRecord, error)
}

// DomainSource fetches filtered feature annotations for an accession.
type DomainSource interface {
	Domains(ctx context.Context, accession string, filter uniprot.FeatureFilter) ([]annot.DomainEntry, error)
}

// Result is the per-transcript outcome. Err is set when the transcript
// failed and was downgraded; its Record then carries only the transcript
// ID and Domains is empty.
type Result struct {
	Record  annot.TranscriptRecord
	Domains []annot.DomainEntry
	Err     error
}

// Runner executes the batch sequentially, one transcript at a time.
type Runner struct {
	Resolver Resolver
	Source   DomainSource
	Filter   uniprot.FeatureFilter
	Log      zerolog.Logger
}

// Run processes ids in order and returns one Result per input ID.
func (r Runner) Run(ctx context.Context, ids []string) []Result {
	results := make([]Result, 0, len(ids))
	for _, id := range ids {
		res := r.one(ctx, id)
		if res.Err != nil {
			r.Log.Warn().Str("transcript", id).Err(res.Err).
				Msg("transcript failed; reporting empty fields")
			res.Record = annot.TranscriptRecord{TranscriptID: id}
			res.Domains = nil
		}
		results = append(results, res)
	}
	return results
}

func (r Runner) one(ctx context.Context, id string) Result {
	rec, err := r.Resolver.Resolve(ctx, id)
	if err != nil {
		return Result{Record: rec, Err: err}
	}
	res := Result{Record: rec}
	if rec.UniProtID == "" {
		r.Log.Debug().Str("transcript", id).Msg("no UniProt mapping, skipping domain fetch")
		return res
	}

	domains, err := r.Source.Domains(ctx, rec.UniProtID, r.Filter)
	if err != nil {
		// An accession UniProt does not know is a not-found result, not a
		// batch-level failure: the record keeps its resolved identifiers.
		if errors.Is(err, uniprot.ErrNotFound) {
			r.Log.Debug().Str("transcript", id).Str("uniprot", rec.UniProtID).
				Msg("accession not found, reporting zero domains")
			return res
		}
		return Result{Record: rec, Err: err}
	}
	if len(domains) == 0 {
		r.Log.Debug().Str("transcript", id).Str("uniprot", rec.UniProtID).
			Msg("no matching features")
	}
	res.Domains = domains
	return res
}
