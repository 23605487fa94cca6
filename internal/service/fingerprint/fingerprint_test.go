package fingerprint

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRequestStable(t *testing.T) {
	r1 := httptest.NewRequest("POST", "/api/v1/attendance/mark", nil)
	r1.Header.Set("User-Agent", "school-app/1.2")
	r1.RemoteAddr = "10.0.0.5:51000"

	r2 := httptest.NewRequest("POST", "/api/v1/attendance/mark", nil)
	r2.Header.Set("User-Agent", "school-app/1.2")
	r2.RemoteAddr = "10.0.0.5:62344"

	// Same device, different ephemeral port.
	assert.Equal(t, FromRequest(r1), FromRequest(r2))
	assert.Len(t, FromRequest(r1), 64)
}

func TestFromRequestDiffersPerDevice(t *testing.T) {
	r1 := httptest.NewRequest("POST", "/", nil)
	r1.Header.Set("User-Agent", "school-app/1.2")
	r1.RemoteAddr = "10.0.0.5:51000"

	r2 := httptest.NewRequest("POST", "/", nil)
	r2.Header.Set("User-Agent", "school-app/2.0")
	r2.RemoteAddr = "10.0.0.5:51000"

	assert.NotEqual(t, FromRequest(r1), FromRequest(r2))
}
