package service

import (
	"crypto/sha256"
	"fmt"
	"io"
	"time"

	"hemstore-gateway/internal/core/domain"
	"hemstore-gateway/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/hkdf"
)

// relayAudience scopes tickets to the checkout store-selection flow only.
const relayAudience = "cvs-store-relay"

// MaxRelayTTL bounds the exposure window of an intercepted ticket.
const MaxRelayTTL = 10 * time.Minute

// JWTStoreRelay implements ports.StoreRelay with signed, short-lived
// tickets. The picker flow has no order to key off, so the verified store
// travels back to the originating browser session inside the ticket itself.
type JWTStoreRelay struct {
	signingKey []byte
	ttl        time.Duration
}

// NewStoreRelay derives a dedicated HMAC signing key from the logistics
// cipher key via HKDF so raw gateway key material never signs tickets.
func NewStoreRelay(profile domain.CredentialProfile, ttl time.Duration) (*JWTStoreRelay, error) {
	if err := profile.Validate(); err != nil {
		return nil, apperror.ErrConfigurationInvalid(string(profile.Purpose), err)
	}
	if ttl <= 0 || ttl > MaxRelayTTL {
		return nil, fmt.Errorf("relay ttl %s outside (0, %s]", ttl, MaxRelayTTL)
	}

	kdf := hkdf.New(sha256.New, []byte(profile.CipherKey), []byte(profile.CipherIV), []byte(relayAudience))
	key := make([]byte, 32)
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, fmt.Errorf("deriving relay key: %w", err)
	}

	return &JWTStoreRelay{signingKey: key, ttl: ttl}, nil
}

type storeTicketClaims struct {
	jwt.RegisteredClaims
	Store domain.StoreSelection `json:"store"`
}

// IssueTicket signs a short-lived single-purpose ticket carrying the
// selection.
func (r *JWTStoreRelay) IssueTicket(sel domain.StoreSelection, now time.Time) (string, error) {
	claims := storeTicketClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{relayAudience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(r.ttl)),
		},
		Store: sel,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(r.signingKey)
	if err != nil {
		return "", fmt.Errorf("signing store ticket: %w", err)
	}
	return signed, nil
}

// RedeemTicket verifies a ticket and returns the selection it carries.
// Expired, foreign-audience or otherwise invalid tickets are rejected with
// a typed error.
func (r *JWTStoreRelay) RedeemTicket(token string, now time.Time) (*domain.StoreSelection, error) {
	var claims storeTicketClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return r.signingKey, nil
	},
		jwt.WithAudience(relayAudience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return nil, apperror.ErrRelayTicketInvalid()
	}
	if claims.Store.StoreID == "" {
		return nil, apperror.ErrRelayTicketInvalid()
	}
	return &claims.Store, nil
}

// TTL returns the ticket lifetime, used by the HTTP layer for cookie
// expiry.
func (r *JWTStoreRelay) TTL() time.Duration {
	return r.ttl
}
