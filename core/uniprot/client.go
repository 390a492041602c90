// core/uniprot/client.go
package uniprot

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

	"protdom-core/annot"
)

// DefaultBaseURL is the public UniProt REST service root.
const DefaultBaseURL = "https://rest.uniprot.org"

// ErrNotFound reports that an accession has no UniProtKB entry. It is
// distinct from an entry that carries no matching features: callers must
// be able to tell "unknown accession" from "zero domains".
var ErrNotFound = errors.New("uniprot: entry not found")

// Client talks to the UniProtKB REST endpoints. All calls are plain
// synchronous request/response; no retries beyond http.Client defaults.
type Client struct {
	base string
	hc   *http.Client
}

func New() *Client { return NewWithBase(DefaultBaseURL) }

// NewWithBase points the client at an alternate service root.
func NewWithBase(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, v any) error {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("uniprot: GET %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("uniprot: GET %s: %w", path, ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("uniprot: GET %s: status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return json.NewDecoder(resp.Body).Decode(v)
}

type searchResult struct {
	Results []Entry `json:"results"`
}

// MapEnsembl resolves an Ensembl transcript ID to a UniProt accession via
// the Ensembl cross-reference index. Returns "" when nothing maps. When
// several entries match, the first hit in the service's default ranking
// (reviewed entries first) wins.
func (c *Client) MapEnsembl(ctx context.Context, ensemblID string) (string, error) {
	q := url.Values{}
	q.Set("query", "xref:ensembl-"+ensemblID)
	q.Set("fields", "accession")
	q.Set("size", "1")
	var sr searchResult
	if err := c.getJSON(ctx, "/uniprotkb/search", q, &sr); err != nil {
		return "", err
	}
	if len(sr.Results) == 0 {
		return "", nil
	}
	return sr.Results[0].PrimaryAccession, nil
}

// MapAccession is the inverse lookup: the Ensembl transcript ID carried in
// an entry's cross-references, version suffix stripped. Returns "" when
// the entry has no Ensembl cross-reference.
func (c *Client) MapAccession(ctx context.Context, accession string) (string, error) {
	entry, err := c.Entry(ctx, accession)
	if err != nil {
		return "", err
	}
	for _, xref := range entry.CrossReferences {
		if xref.Database != "Ensembl" {
			continue
		}
		id, _, _ := strings.Cut(xref.ID, ".")
		return id, nil
	}
	return "", nil
}

// Entry retrieves the full UniProtKB record for an accession.
func (c *Client) Entry(ctx context.Context, accession string) (Entry, error) {
	var e Entry
	err := c.getJSON(ctx, "/uniprotkb/"+url.PathEscape(accession), nil, &e)
	return e, err
}

// Domains returns the entry's features that pass filter, in record order.
// A nil or empty filter keeps everything.
func (c *Client) Domains(ctx context.Context, accession string, filter FeatureFilter) ([]annot.DomainEntry, error) {
	entry, err := c.Entry(ctx, accession)
	if err != nil {
		return nil, err
	}
	var out []annot.DomainEntry
	for _, f := range entry.Features {
		if !filter.Allows(f.Type) {
			continue
		}
		out = append(out, annot.DomainEntry{
			Type:        f.Type,
			Description: f.Description,
			Start:       f.Location.Start.Value,
			End:         f.Location.End.Value,
		})
	}
	return out, nil
}

// Sequence returns the raw amino-acid sequence string for an accession.
func (c *Client) Sequence(ctx context.Context, accession string) (string, error) {
	entry, err := c.Entry(ctx, accession)
	if err != nil {
		return "", err
	}
	return entry.Sequence.Value, nil
}

// CrossReferences returns the entry's external database rows.
func (c *Client) CrossReferences(ctx context.Context, accession string) ([]CrossReference, error) {
	entry, err := c.Entry(ctx, accession)
	if err != nil {
		return nil, err
	}
	return entry.CrossReferences, nil
}

// Raw returns the complete record as a generic key-value structure, for
// callers needing fields beyond the typed Entry subset.
func (c *Client) Raw(ctx context.Context, accession string) (map[string]any, error) {
	var m map[string]any
	if err := c.getJSON(ctx, "/uniprotkb/"+url.PathEscape(accession), nil, &m); err != nil {
		return nil, err
	}
	return m, nil
}
