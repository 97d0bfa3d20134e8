package httpx

import (
	"fmt"
	"net/http"
)

// APIKeyRoundTripper attaches a static API key to every request as a query
// parameter. The caller's request is cloned, never modified.
type APIKeyRoundTripper struct {
	next  http.RoundTripper
	param string
	key   string
}

func NewAPIKeyRoundTripper(next http.RoundTripper, param, key string) APIKeyRoundTripper {
	return APIKeyRoundTripper{
		next:  next,
		param: param,
		key:   key,
	}
}

func (rt APIKeyRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())

	query := clone.URL.Query()
	query.Set(rt.param, rt.key)
	clone.URL.RawQuery = query.Encode()

	resp, err := rt.next.RoundTrip(clone)
	if err != nil {
		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	return resp, nil
}
