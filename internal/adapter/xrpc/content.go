package xrpc

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	json "github.com/goccy/go-json"

	"github.com/heartmarshall/likelabeler/internal/domain"
)

const postCollection = "app.bsky.feed.post"

// GetPostText returns the text of a post record.
// Returns domain.ErrNotFound if the record does not exist.
func (c *Client) GetPostText(ctx context.Context, repo, rkey string) (string, error) {
	var out getRecordResponse
	err := c.invoke(ctx, call{
		method: http.MethodGet,
		nsid:   "com.atproto.repo.getRecord",
		query: url.Values{
			"repo":       {repo},
			"collection": {postCollection},
			"rkey":       {rkey},
		},
		out: &out,
	})
	if IsName(err, "RecordNotFound") {
		return "", fmt.Errorf("xrpc: post %s/%s: %w", repo, rkey, domain.ErrNotFound)
	}
	if err != nil {
		return "", err
	}

	var post postRecord
	if err := json.Unmarshal(out.Value, &post); err != nil {
		return "", fmt.Errorf("xrpc: decode post %s/%s: %w", repo, rkey, err)
	}
	return post.Text, nil
}
