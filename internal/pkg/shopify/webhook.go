package shopify

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
)

// HmacHeader carries the base64 digest Shopify computes over the raw
// request body.
const HmacHeader = "X-Shopify-Hmac-Sha256"

// VerifyWebhook reports whether header is a valid HMAC-SHA256 of body under
// secret. body must be the exact raw bytes of the request — decoding the
// payload first destroys the byte sequence the signature was computed over.
//
// The comparison is length-checked and constant-time: mismatched lengths
// return false immediately, equal lengths are compared without a
// position-dependent early exit.
func VerifyWebhook(body []byte, header, secret string) bool {
	if header == "" || secret == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	if len(expected) != len(header) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(header)) == 1
}
