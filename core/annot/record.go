// core/annot/record.go
package annot

import "fmt"

// TranscriptRecord collects the identifiers resolved for one Ensembl
// transcript. Fields that could not be resolved stay empty; a record is
// built once per transcript and never merged with another.
type TranscriptRecord struct {
	TranscriptID string
	ProteinID    string
	GeneID       string
	GeneName     string
	UniProtID    string
	UniProtURL   string
}

// DomainEntry is a single protein feature annotation. Start and End are
// 1-based inclusive residue positions as reported by the source record.
type DomainEntry struct {
	Type        string
	Description string
	Start       int
	End         int
}

// EntryURL returns the UniProtKB entry page for an accession.
func EntryURL(accession string) string {
	return fmt.Sprintf("https://www.uniprot.org/uniprotkb/%s/entry", accession)
}
