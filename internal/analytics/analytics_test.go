package analytics

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRequestNormalizesPlatform(t *testing.T) {
	r := httptest.NewRequest("POST", "/analytics/tool-started", nil)
	r.Header.Set("X-Platform", "iOS")
	r.Header.Set("X-App-Version", "1.4.0")
	r.Header.Set("X-Session-Id", "sess-1")

	env := FromRequest(r)
	assert.Equal(t, "ios", env.Platform)
	assert.Equal(t, "1.4.0", env.AppVersion)
	assert.Equal(t, "sess-1", env.SessionID)
}

func TestFromRequestUnknownPlatform(t *testing.T) {
	r := httptest.NewRequest("POST", "/analytics/tool-started", nil)
	r.Header.Set("X-Platform", "blackberry")

	env := FromRequest(r)
	assert.Equal(t, "unknown", env.Platform)
}

func TestFromRequestLocaleFallback(t *testing.T) {
	r := httptest.NewRequest("POST", "/analytics/tool-started", nil)
	r.Header.Set("X-Device-Locale", "en-GB")

	env := FromRequest(r)
	assert.Equal(t, "en-GB", env.DeviceLocale)
}

func TestSourceEventKeyPrefersIdempotencyHeader(t *testing.T) {
	r := httptest.NewRequest("POST", "/analytics/tool-started", nil)
	r.Header.Set("Idempotency-Key", "abc")
	r.Header.Set("X-Source-Event-Key", "def")

	assert.Equal(t, "abc", SourceEventKeyFromRequest(r))
}
