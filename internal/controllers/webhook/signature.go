package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
)

const (
	// SignatureHeader carries the HMAC-SHA256 of the raw body keyed with the app secret.
	SignatureHeader = "X-Hub-Signature-256"
	signaturePrefix = "sha256="
)

// SignatureMiddleware rejects requests whose X-Hub-Signature-256 does not match
// the body. With an empty appSecret every request passes.
func SignatureMiddleware(appSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if appSecret == "" {
			return c.Next()
		}

		header := c.Get(SignatureHeader)
		if header == "" {
			return richerrors.Error{
				ExternalMsg: "Missing signature",
				Err:         errors.New("request has no " + SignatureHeader + " header"),
				Code:        fiber.StatusForbidden,
			}
		}
		if !ValidSignature(appSecret, c.Body(), header) {
			return richerrors.Error{
				ExternalMsg: "Invalid signature",
				Err:         errors.New("signature does not match request body"),
				Code:        fiber.StatusForbidden,
			}
		}
		return c.Next()
	}
}

// ValidSignature reports whether header is "sha256=<hex hmac of body>".
func ValidSignature(appSecret string, body []byte, header string) bool {
	if !strings.HasPrefix(header, signaturePrefix) {
		return false
	}
	got, err := hex.DecodeString(strings.TrimPrefix(header, signaturePrefix))
	if err != nil {
		return false
	}
	return hmac.Equal(got, Sign(appSecret, body))
}

// Sign computes the raw HMAC-SHA256 of body.
func Sign(appSecret string, body []byte) []byte {
	mac := hmac.New(sha256.New, []byte(appSecret))
	mac.Write(body)
	return mac.Sum(nil)
}
