package gateway

import (
	"crypto/sha512"
	"encoding/hex"
)

// SignaturePayload computes the digest the provider signs a notification with:
// SHA-512 over order id + status code + gross amount + server key, hex encoded.
func SignaturePayload(orderID, statusCode, grossAmount, serverKey string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:])
}

// VerifyNotificationSignature reports whether the claimed signature_key matches
// the digest recomputed from the signed fields. Any mismatch means the whole
// notification must be rejected without touching state.
func VerifyNotificationSignature(n Notification, serverKey string) bool {
	if n.SignatureKey == "" {
		return false
	}
	return SignaturePayload(n.OrderID, n.StatusCode, n.GrossAmount, serverKey) == n.SignatureKey
}
