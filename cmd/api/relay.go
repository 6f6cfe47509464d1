package main

import (
	"time"

	"hemstore-gateway/internal/core/domain"
	"hemstore-gateway/pkg/apperror"
)

// unavailableRelay stands in when no logistics credentials are configured:
// the routes stay mounted but every ticket operation reports the feature
// as unavailable.
type unavailableRelay struct{}

func (unavailableRelay) IssueTicket(domain.StoreSelection, time.Time) (string, error) {
	return "", apperror.ErrConfigurationMissing(string(domain.PurposeLogistics))
}

func (unavailableRelay) RedeemTicket(string, time.Time) (*domain.StoreSelection, error) {
	return nil, apperror.ErrConfigurationMissing(string(domain.PurposeLogistics))
}

func (unavailableRelay) TTL() time.Duration { return 0 }
