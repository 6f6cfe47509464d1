package service

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"hemstore-gateway/internal/core/domain"
	"hemstore-gateway/pkg/apperror"
)

// AESCBCEnvelopeCodec implements ports.EnvelopeCodec against the gateway's
// contract: AES-256-CBC over the flat parameter encoding, ciphertext carried
// as hex or base64, and an uppercase hex SHA-256 digest binding the
// ciphertext to the profile's key material.
//
// The codec is pure: no side effects, all failures are typed errors.
type AESCBCEnvelopeCodec struct {
	encoding domain.CipherEncoding
}

// NewEnvelopeCodec creates a codec with the configured ciphertext encoding.
// The encoding is an explicit deployment choice, never inferred.
func NewEnvelopeCodec(encoding domain.CipherEncoding) *AESCBCEnvelopeCodec {
	return &AESCBCEnvelopeCodec{encoding: encoding}
}

// Encode serializes params deterministically, encrypts with the profile's
// key/IV and signs the encoded ciphertext.
func (c *AESCBCEnvelopeCodec) Encode(params domain.Params, profile domain.CredentialProfile) (*domain.TradeEnvelope, error) {
	if err := profile.Validate(); err != nil {
		return nil, apperror.ErrConfigurationInvalid(string(profile.Purpose), err)
	}

	raw, err := encryptCBC([]byte(params.Encode()), []byte(profile.CipherKey), []byte(profile.CipherIV))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("encrypting envelope: %w", err))
	}

	var cipherText string
	switch c.encoding {
	case domain.EncodingBase64:
		cipherText = base64.StdEncoding.EncodeToString(raw)
	default:
		cipherText = hex.EncodeToString(raw)
	}

	return &domain.TradeEnvelope{
		CipherText: cipherText,
		Signature:  signEnvelope(cipherText, profile),
	}, nil
}

// Open verifies the envelope signature, then decrypts. The order is
// load-bearing: ciphertext is never decrypted before it is authenticated.
func (c *AESCBCEnvelopeCodec) Open(env domain.TradeEnvelope, profile domain.CredentialProfile) (string, error) {
	if err := profile.Validate(); err != nil {
		return "", apperror.ErrConfigurationInvalid(string(profile.Purpose), err)
	}

	expected := signEnvelope(env.CipherText, profile)
	if !hmac.Equal([]byte(expected), []byte(env.Signature)) {
		return "", apperror.ErrSignatureMismatch()
	}

	var raw []byte
	var err error
	switch c.encoding {
	case domain.EncodingBase64:
		raw, err = base64.StdEncoding.DecodeString(env.CipherText)
	default:
		raw, err = hex.DecodeString(env.CipherText)
	}
	if err != nil {
		return "", apperror.ErrDecryptionFailure(fmt.Errorf("decoding ciphertext: %w", err))
	}

	plain, err := decryptCBC(raw, []byte(profile.CipherKey), []byte(profile.CipherIV))
	if err != nil {
		return "", apperror.ErrDecryptionFailure(err)
	}
	return string(plain), nil
}

// Decode opens the envelope and parses the plaintext back into an ordered
// parameter set.
func (c *AESCBCEnvelopeCodec) Decode(env domain.TradeEnvelope, profile domain.CredentialProfile) (domain.Params, error) {
	plain, err := c.Open(env, profile)
	if err != nil {
		return nil, err
	}
	params, err := domain.ParseParams(plain)
	if err != nil {
		return nil, apperror.ErrDecryptionFailure(fmt.Errorf("parsing plaintext: %w", err))
	}
	return params, nil
}

// signEnvelope computes the gateway signature over an encoded ciphertext.
// The field ordering and literal separators match the external contract
// bit-for-bit.
func signEnvelope(cipherText string, profile domain.CredentialProfile) string {
	sum := sha256.Sum256([]byte("HashKey=" + profile.CipherKey + "&" + cipherText + "&HashIV=" + profile.CipherIV))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

func encryptCBC(plain, key, iv []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}
	padded := pkcs7Pad(plain, block.BlockSize())
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)
	return out, nil
}

func decryptCBC(raw, key, iv []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}
	if len(raw) == 0 || len(raw)%block.BlockSize() != 0 {
		return nil, fmt.Errorf("ciphertext length %d is not a multiple of the block size", len(raw))
	}
	out := make([]byte, len(raw))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, raw)
	return pkcs7Unpad(out, block.BlockSize())
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, fmt.Errorf("invalid padding")
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("invalid padding")
		}
	}
	return data[:len(data)-n], nil
}
