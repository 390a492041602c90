package uniprot

// Entry is the subset of a UniProtKB record this library decodes. Callers
// needing fields outside this subset can fall back to Client.Raw.
type Entry struct {
	PrimaryAccession string           `json:"primaryAccession"`
	UniProtKBID      string           `json:"uniProtkbId"`
	Genes            []Gene           `json:"genes"`
	Sequence         Sequence         `json:"sequence"`
	Features         []Feature        `json:"features"`
	CrossReferences  []CrossReference `json:"uniProtKBCrossReferences"`
}

type Gene struct {
	Name ValueField `json:"geneName"`
}

type ValueField struct {
	Value string `json:"value"`
}

type Sequence struct {
	Value  string `json:"value"`
	Length int    `json:"length"`
}

// Feature is one annotated region of the protein sequence.
type Feature struct {
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Location    Location `json:"location"`
}

type Location struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

type Position struct {
	Value int `json:"value"`
}

// CrossReference is one row of the entry's external database links.
type CrossReference struct {
	Database   string     `json:"database"`
	ID         string     `json:"id"`
	Properties []Property `json:"properties"`
}

type Property struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
