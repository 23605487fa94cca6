// Package fingerprint derives a stable device identifier from request
// headers. Used to tag attendance submissions with the marking device.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
)

var headers = []string{
	"User-Agent",
	"Accept-Language",
	"Accept-Encoding",
	"Sec-Ch-Ua-Platform",
}

// FromRequest hashes a fixed set of client headers together with the remote
// address. The same device produces the same fingerprint across requests.
func FromRequest(r *http.Request) string {
	var b strings.Builder
	for _, h := range headers {
		b.WriteString(r.Header.Get(h))
		b.WriteByte('|')
	}

	host := r.RemoteAddr
	if i := strings.LastIndex(host, ":"); i > 0 {
		host = host[:i]
	}
	b.WriteString(host)

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
