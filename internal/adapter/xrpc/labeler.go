package xrpc

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	json "github.com/goccy/go-json"

	"github.com/heartmarshall/likelabeler/internal/domain"
)

const (
	labelerCollection = "app.bsky.labeler.service"
	labelerRKey       = "self"
)

type labelerRecord struct {
	Policies struct {
		LabelValues           []string               `json:"labelValues"`
		LabelValueDefinitions []labelValueDefinition `json:"labelValueDefinitions"`
	} `json:"policies"`
}

// GetLabelCatalog reads the labeler service record. A missing record yields
// an empty catalog.
func (c *Client) GetLabelCatalog(ctx context.Context) (domain.LabelCatalog, error) {
	var out getRecordResponse
	err := c.invoke(ctx, call{
		method: http.MethodGet,
		nsid:   "com.atproto.repo.getRecord",
		query: url.Values{
			"repo":       {c.labelerDID},
			"collection": {labelerCollection},
			"rkey":       {labelerRKey},
		},
		out: &out,
	})
	if IsName(err, "RecordNotFound") {
		c.log.WarnContext(ctx, "labeler service record not found, starting from an empty catalog")
		return domain.LabelCatalog{Values: []string{}, Definitions: []domain.LabelDefinition{}}, nil
	}
	if err != nil {
		return domain.LabelCatalog{}, err
	}

	var rec labelerRecord
	if err := json.Unmarshal(out.Value, &rec); err != nil {
		return domain.LabelCatalog{}, fmt.Errorf("xrpc: decode labeler record: %w", err)
	}

	cat := domain.LabelCatalog{
		Values:      make([]string, 0, len(rec.Policies.LabelValues)),
		Definitions: make([]domain.LabelDefinition, 0, len(rec.Policies.LabelValueDefinitions)),
		Raw:         out.Value,
	}
	cat.Values = append(cat.Values, rec.Policies.LabelValues...)
	for _, d := range rec.Policies.LabelValueDefinitions {
		cat.Definitions = append(cat.Definitions, definitionFromWire(d))
	}

	return cat, nil
}

// PutLabelCatalog writes the catalog back into the labeler service record,
// keeping every other field of cat.Raw. The write is not conditional: the
// last writer wins.
func (c *Client) PutLabelCatalog(ctx context.Context, cat domain.LabelCatalog) error {
	record := map[string]json.RawMessage{}
	if len(cat.Raw) > 0 {
		if err := json.Unmarshal(cat.Raw, &record); err != nil {
			return fmt.Errorf("xrpc: decode labeler record: %w", err)
		}
	}

	policies := map[string]json.RawMessage{}
	if raw, ok := record["policies"]; ok {
		if err := json.Unmarshal(raw, &policies); err != nil {
			return fmt.Errorf("xrpc: decode labeler policies: %w", err)
		}
	}

	values := cat.Values
	if values == nil {
		values = []string{}
	}
	defs := make([]labelValueDefinition, len(cat.Definitions))
	for i, d := range cat.Definitions {
		defs[i] = definitionToWire(d)
	}

	var err error
	if policies["labelValues"], err = json.Marshal(values); err != nil {
		return fmt.Errorf("xrpc: encode label values: %w", err)
	}
	if policies["labelValueDefinitions"], err = json.Marshal(defs); err != nil {
		return fmt.Errorf("xrpc: encode label definitions: %w", err)
	}
	if record["policies"], err = json.Marshal(policies); err != nil {
		return fmt.Errorf("xrpc: encode labeler policies: %w", err)
	}
	record["$type"], _ = json.Marshal(labelerCollection)
	if _, ok := record["createdAt"]; !ok {
		record["createdAt"], _ = json.Marshal(c.clock.Now().UTC().Format(time.RFC3339Nano))
	}

	return c.invoke(ctx, call{
		method: http.MethodPost,
		nsid:   "com.atproto.repo.putRecord",
		body: putRecordRequest{
			Repo:       c.labelerDID,
			Collection: labelerCollection,
			RKey:       labelerRKey,
			Record:     record,
		},
	})
}
