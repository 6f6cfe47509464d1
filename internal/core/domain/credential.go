package domain

import "fmt"

// CredentialPurpose identifies which trust relationship with the gateway a
// profile belongs to. Payment (MPG) and logistics (store map) use separate
// key material.
type CredentialPurpose string

const (
	PurposePayment   CredentialPurpose = "payment"
	PurposeLogistics CredentialPurpose = "logistics"
)

// Gateway contract: AES-256-CBC key and IV sizes.
const (
	CipherKeyLen = 32
	CipherIVLen  = 16
)

// CredentialProfile holds the secret material scoping one trust relationship
// with the gateway. Loaded once at startup, immutable afterwards, and never
// written to storage or logs in plaintext.
type CredentialProfile struct {
	Purpose    CredentialPurpose
	Identifier string // provider-assigned merchant/user id
	CipherKey  string // exactly 32 bytes
	CipherIV   string // exactly 16 bytes
}

// IsAbsent reports whether the profile is entirely unconfigured. A profile
// is either fully present or absent; anything in between is a configuration
// error surfaced by Validate.
func (p CredentialProfile) IsAbsent() bool {
	return p.Identifier == "" && p.CipherKey == "" && p.CipherIV == ""
}

// Validate checks that all three fields are present and length-correct.
// Partial configuration is never tolerated.
func (p CredentialProfile) Validate() error {
	if p.Identifier == "" {
		return fmt.Errorf("%s profile: identifier is empty", p.Purpose)
	}
	if len(p.CipherKey) != CipherKeyLen {
		return fmt.Errorf("%s profile: cipher key must be %d bytes, got %d", p.Purpose, CipherKeyLen, len(p.CipherKey))
	}
	if len(p.CipherIV) != CipherIVLen {
		return fmt.Errorf("%s profile: cipher IV must be %d bytes, got %d", p.Purpose, CipherIVLen, len(p.CipherIV))
	}
	return nil
}

// CipherEncoding selects the transport encoding of the ciphertext. The
// choice is explicit configuration, never inferred from the payload.
type CipherEncoding string

const (
	EncodingHex    CipherEncoding = "hex"
	EncodingBase64 CipherEncoding = "base64"
)

// ParseCipherEncoding validates a configured encoding name.
func ParseCipherEncoding(s string) (CipherEncoding, error) {
	switch CipherEncoding(s) {
	case EncodingHex, EncodingBase64:
		return CipherEncoding(s), nil
	default:
		return "", fmt.Errorf("unknown cipher encoding %q", s)
	}
}
