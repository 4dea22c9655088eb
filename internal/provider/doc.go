package provider

// Package provider wraps the Spotify Web API behind the Session interface.
// The proxy server depends only on Session, so handlers are testable with a
// fake; the real implementation authorizes via OAuth with a cached token and
// narrows the provider's response envelopes to internal/model types.
