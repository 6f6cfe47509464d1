package service

import (
	"testing"
	"time"

	"hemstore-gateway/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSelection() domain.StoreSelection {
	return domain.StoreSelection{
		StoreID:      "935392",
		StoreName:    "7-ELEVEN Songfu",
		StoreAddress: "No.1 Songshou Rd",
	}
}

func TestStoreRelay_IssueAndRedeem(t *testing.T) {
	relay, err := NewStoreRelay(logisticsProfile, 5*time.Minute)
	require.NoError(t, err)

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	token, err := relay.IssueTicket(testSelection(), now)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sel, err := relay.RedeemTicket(token, now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, testSelection(), *sel)
}

func TestStoreRelay_ExpiredTicketRejected(t *testing.T) {
	relay, err := NewStoreRelay(logisticsProfile, 5*time.Minute)
	require.NoError(t, err)

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	token, err := relay.IssueTicket(testSelection(), now)
	require.NoError(t, err)

	_, err = relay.RedeemTicket(token, now.Add(5*time.Minute+time.Second))
	assertAppCode(t, err, "SEC_003")
}

func TestStoreRelay_ForeignKeyRejected(t *testing.T) {
	issuer, err := NewStoreRelay(logisticsProfile, 5*time.Minute)
	require.NoError(t, err)
	verifier, err := NewStoreRelay(paymentProfile, 5*time.Minute)
	require.NoError(t, err)

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	token, err := issuer.IssueTicket(testSelection(), now)
	require.NoError(t, err)

	_, err = verifier.RedeemTicket(token, now)
	assertAppCode(t, err, "SEC_003")
}

func TestStoreRelay_GarbageTokenRejected(t *testing.T) {
	relay, err := NewStoreRelay(logisticsProfile, 5*time.Minute)
	require.NoError(t, err)

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err = relay.RedeemTicket(token, now)
		assertAppCode(t, err, "SEC_003")
	}
}

func TestNewStoreRelay_TTLBounds(t *testing.T) {
	_, err := NewStoreRelay(logisticsProfile, 0)
	assert.Error(t, err)

	_, err = NewStoreRelay(logisticsProfile, MaxRelayTTL+time.Second)
	assert.Error(t, err)

	_, err = NewStoreRelay(logisticsProfile, MaxRelayTTL)
	assert.NoError(t, err)
}

func TestNewStoreRelay_InvalidProfile(t *testing.T) {
	profile := logisticsProfile
	profile.CipherKey = ""
	_, err := NewStoreRelay(profile, 5*time.Minute)
	assert.Error(t, err)
}
