package testutil

import (
	"net/http"

	"speakerreg/pkg/requestcontext"
)

// WithRequestID sets the request id the RequestID middleware would set.
func WithRequestID(req *http.Request, requestID string) *http.Request {
	return req.WithContext(requestcontext.WithRequestID(req.Context(), requestID))
}

// WithUserAgent sets the header and the context value ClientMetadata would set.
func WithUserAgent(req *http.Request, userAgent string) *http.Request {
	req.Header.Set("User-Agent", userAgent)
	ctx := requestcontext.WithClientMetadata(req.Context(), "192.0.2.1", userAgent)
	return req.WithContext(ctx)
}
