// Package token verifies the bearer tokens the mobile client sends.
//
// A token is "<user id>.<hex hmac>" where the hmac is SHA-256 over the user
// id with a shared secret. With an empty secret verification is disabled and
// the raw token is taken as the user id, which keeps local development free
// of key handling
package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	perr "mondegreen/internal/platform/errors"
)

// Verifier checks bearer tokens against a shared secret
type Verifier struct {
	secret []byte
}

// NewVerifier builds a Verifier. An empty secret disables verification
func NewVerifier(secret string) *Verifier {
	if secret == "" {
		return &Verifier{}
	}
	return &Verifier{secret: []byte(secret)}
}

// Parse returns the user id a token names, or an unauthorized error
func (v *Verifier) Parse(tok string) (string, error) {
	if tok == "" {
		return "", perr.Unauthorizedf("empty token")
	}
	if len(v.secret) == 0 {
		// dev passthrough
		return tok, nil
	}
	uid, sig, ok := strings.Cut(tok, ".")
	if !ok || uid == "" || sig == "" {
		return "", perr.Unauthorizedf("malformed token")
	}
	want := Sign(string(v.secret), uid)
	if !hmac.Equal([]byte(sig), []byte(want)) {
		return "", perr.Unauthorizedf("bad token signature")
	}
	return uid, nil
}

// Sign produces the hex signature for a user id
func Sign(secret, userID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(userID))
	return hex.EncodeToString(mac.Sum(nil))
}

// Make produces a complete token for a user id. Exposed for tooling and tests
func Make(secret, userID string) string {
	return userID + "." + Sign(secret, userID)
}
