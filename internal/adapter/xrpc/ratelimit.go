package xrpc

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/likelabeler/internal/domain"
)

const (
	headerRateLimitLimit     = "ratelimit-limit"
	headerRateLimitRemaining = "ratelimit-remaining"
	headerRateLimitReset     = "ratelimit-reset"
	headerRateLimitPolicy    = "ratelimit-policy"

	rateLimitErrorName    = "RateLimitExceeded"
	rateLimitErrorMessage = "Rate Limit Exceeded"
)

// isRateLimited recognizes both the 429 status and the error bodies some
// PDS versions send with other statuses.
func isRateLimited(status int, body errorBody) bool {
	return status == http.StatusTooManyRequests ||
		body.Error == rateLimitErrorName ||
		strings.Contains(body.Message, rateLimitErrorMessage)
}

// rateLimitFromResponse builds a domain.RateLimitError from the
// ratelimit-* response headers.
func rateLimitFromResponse(h http.Header, body errorBody) *domain.RateLimitError {
	msg := body.Message
	if msg == "" {
		msg = rateLimitErrorMessage
	}

	rl := domain.NewRateLimitError(msg, strings.TrimSpace(h.Get(headerRateLimitReset)))
	rl.Limit = h.Get(headerRateLimitLimit)
	rl.Remaining = h.Get(headerRateLimitRemaining)
	rl.Policy = h.Get(headerRateLimitPolicy)
	return rl
}
