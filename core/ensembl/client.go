// core/ensembl/client.go
package ensembl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// BaseURLs maps the supported human assemblies to their REST roots.
var BaseURLs = map[string]string{
	"GRCh38": "https://rest.ensembl.org",
	"GRCh37": "https://grch37.rest.ensembl.org",
}

// ErrNotFound reports that an identifier is unknown to the service.
var ErrNotFound = errors.New("ensembl: id not found")

// Lookup is the decoded /lookup/id response.
type Lookup struct {
	ID                  string       `json:"id"`
	DisplayName         string       `json:"display_name"`
	Parent              string       `json:"Parent"`
	Biotype             string       `json:"biotype"`
	CanonicalTranscript string       `json:"canonical_transcript"`
	Strand              int          `json:"strand"`
	Translation         *Translation `json:"Translation"`
}

// Translation is the protein product attached to a transcript lookup.
type Translation struct {
	ID      string `json:"id"`
	Version int    `json:"version"`
	Length  int    `json:"length"`
}

// Client talks to the Ensembl REST service for one assembly.
type Client struct {
	base string
	hc   *http.Client
}

// New returns a client for the given assembly version.
func New(assembly string) (*Client, error) {
	base, ok := BaseURLs[assembly]
	if !ok {
		return nil, fmt.Errorf("ensembl: unsupported assembly %q", assembly)
	}
	return NewWithBase(base), nil
}

// NewWithBase points the client at an alternate service root.
func NewWithBase(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("ensembl: GET %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("ensembl: GET %s: %w", path, ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("ensembl: GET %s: status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return json.NewDecoder(resp.Body).Decode(v)
}

// LookupID fetches the expanded lookup record for any Ensembl ID.
func (c *Client) LookupID(ctx context.Context, id string) (Lookup, error) {
	var l Lookup
	err := c.getJSON(ctx, "/lookup/id/"+url.PathEscape(id)+"?expand=1", &l)
	return l, err
}

// TranscriptParent returns the gene ID (ENSG) containing a transcript, or
// "" when the lookup carries no parent.
func (c *Client) TranscriptParent(ctx context.Context, transcriptID string) (string, error) {
	l, err := c.LookupID(ctx, transcriptID)
	if err != nil {
		return "", err
	}
	return l.Parent, nil
}

// TranscriptProteinID returns the protein ID (ENSP) translated from a
// transcript, or "" for non-coding transcripts.
func (c *Client) TranscriptProteinID(ctx context.Context, transcriptID string) (string, error) {
	l, err := c.LookupID(ctx, transcriptID)
	if err != nil {
		return "", err
	}
	if l.Translation == nil {
		return "", nil
	}
	return l.Translation.ID, nil
}

// GeneSymbol converts a gene ID (ENSG) to its display symbol, or "" when
// the gene has none.
func (c *Client) GeneSymbol(ctx context.Context, geneID string) (string, error) {
	l, err := c.LookupID(ctx, geneID)
	if err != nil {
		return "", err
	}
	return l.DisplayName, nil
}

// CanonicalTranscript returns the transcript Ensembl marks canonical for
// a gene ID, version suffix included as the service reports it.
func (c *Client) CanonicalTranscript(ctx context.Context, geneID string) (string, error) {
	l, err := c.LookupID(ctx, geneID)
	if err != nil {
		return "", err
	}
	return l.CanonicalTranscript, nil
}

// IsProteinCoding reports whether a transcript's biotype is protein_coding.
func (c *Client) IsProteinCoding(ctx context.Context, transcriptID string) (bool, error) {
	l, err := c.LookupID(ctx, transcriptID)
	if err != nil {
		return false, err
	}
	return l.Biotype == "protein_coding", nil
}
