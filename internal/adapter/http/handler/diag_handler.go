package handler

import (
	"hemstore-gateway/internal/core/domain"
	"hemstore-gateway/pkg/logger"
	"hemstore-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// DiagConfig is the gateway wiring snapshot the diagnostics endpoint
// reports.
type DiagConfig struct {
	MPGURL         string
	StoreMapURL    string
	NotifyBaseURL  string
	ClientBaseURL  string
	CipherEncoding domain.CipherEncoding
	FieldSuffix    string
	Payment        domain.CredentialProfile
	Logistics      domain.CredentialProfile
}

type credentialDiag struct {
	Configured bool   `json:"configured"`
	Valid      bool   `json:"valid"`
	Identifier string `json:"identifier,omitempty"`
	HashKey    string `json:"hash_key,omitempty"`
	HashIV     string `json:"hash_iv,omitempty"`
}

// GatewayDiag handles GET /api/gateway/diag: which gateway features are
// wired and with what credentials, masked. Meant for operators checking an
// environment, not for the storefront.
func GatewayDiag(cfg DiagConfig) gin.HandlerFunc {
	describe := func(p domain.CredentialProfile) credentialDiag {
		if p.IsAbsent() {
			return credentialDiag{Configured: false}
		}
		return credentialDiag{
			Configured: true,
			Valid:      p.Validate() == nil,
			Identifier: p.Identifier,
			HashKey:    logger.Mask(p.CipherKey, 4),
			HashIV:     logger.Mask(p.CipherIV, 4),
		}
	}

	return func(c *gin.Context) {
		response.OK(c, gin.H{
			"mpg_url":         cfg.MPGURL,
			"store_map_url":   cfg.StoreMapURL,
			"notify_base_url": cfg.NotifyBaseURL,
			"client_base_url": cfg.ClientBaseURL,
			"cipher_encoding": cfg.CipherEncoding,
			"field_suffix":    cfg.FieldSuffix,
			"payment":         describe(cfg.Payment),
			"logistics":       describe(cfg.Logistics),
		})
	}
}
