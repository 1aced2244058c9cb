package xrpc

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/heartmarshall/likelabeler/internal/domain"
)

const (
	modEventLabelType = "tools.ozone.moderation.defs#modEventLabel"
	repoRefType       = "com.atproto.admin.defs#repoRef"
)

// GetAccountModeration looks the account up in the labeler's Ozone instance.
// Returns domain.ErrUnknownAccount when Ozone has no record of it.
func (c *Client) GetAccountModeration(ctx context.Context, did string) (domain.AccountModeration, error) {
	var out repoView
	err := c.invoke(ctx, call{
		method: http.MethodGet,
		nsid:   "tools.ozone.moderation.getRepo",
		query:  url.Values{"did": {did}},
		out:    &out,
		proxy:  true,
	})
	if IsName(err, "RepoNotFound") {
		return domain.AccountModeration{}, fmt.Errorf("xrpc: getRepo %s: %w", did, domain.ErrUnknownAccount)
	}
	if err != nil {
		return domain.AccountModeration{}, err
	}

	return domain.AccountModeration{DID: out.DID, Handle: out.Handle}, nil
}

// EmitLabelEvent applies and negates label values on an account.
func (c *Client) EmitLabelEvent(ctx context.Context, did string, create, negate []string) error {
	if create == nil {
		create = []string{}
	}
	if negate == nil {
		negate = []string{}
	}

	return c.invoke(ctx, call{
		method: http.MethodPost,
		nsid:   "tools.ozone.moderation.emitEvent",
		body: emitEventRequest{
			Event: modEventLabel{
				Type:            modEventLabelType,
				CreateLabelVals: create,
				NegateLabelVals: negate,
			},
			Subject:         repoRef{Type: repoRefType, DID: did},
			CreatedBy:       c.DID(),
			SubjectBlobCids: []string{},
		},
		proxy: true,
	})
}
