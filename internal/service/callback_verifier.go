package service

import (
	"encoding/json"
	"net/url"
	"strings"

	"hemstore-gateway/internal/core/domain"
	"hemstore-gateway/internal/core/ports"
	"hemstore-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// CallbackFieldNames configures the provider-mandated form field names per
// callback route. Payment-notify and logistics-map providers use different
// naming conventions; revisions of the logistics manual also move between
// plain and underscore-suffixed names. The variation is configuration, not
// code forks.
type CallbackFieldNames struct {
	PaymentCipher   string // default TradeInfo
	PaymentHash     string // default TradeSha
	LogisticsCipher string // default EncryptData
	LogisticsHash   string // default HashData
	LogisticsStatus string // default Status
}

// DefaultCallbackFieldNames returns the current provider revision's names.
func DefaultCallbackFieldNames() CallbackFieldNames {
	return CallbackFieldNames{
		PaymentCipher:   "TradeInfo",
		PaymentHash:     "TradeSha",
		LogisticsCipher: "EncryptData",
		LogisticsHash:   "HashData",
		LogisticsStatus: "Status",
	}
}

// storeFieldAliases maps each canonical store attribute to the field-name
// spellings seen across provider revisions, resolved in order. One table
// instead of fallback chains scattered through handlers.
var storeFieldAliases = map[string][]string{
	"id":      {"StoreID", "CVSStoreID"},
	"name":    {"StoreName", "CVSStoreName"},
	"address": {"StoreAddr", "StoreAddress", "CVSAddress"},
}

// CallbackVerifierImpl implements ports.CallbackVerifier.
type CallbackVerifierImpl struct {
	codec     ports.EnvelopeCodec
	fields    CallbackFieldNames
	payment   domain.CredentialProfile
	logistics domain.CredentialProfile
	log       zerolog.Logger
}

// NewCallbackVerifier creates a verifier bound to its per-route field names
// and credential profiles.
func NewCallbackVerifier(
	codec ports.EnvelopeCodec,
	fields CallbackFieldNames,
	payment, logistics domain.CredentialProfile,
	log zerolog.Logger,
) *CallbackVerifierImpl {
	return &CallbackVerifierImpl{
		codec:     codec,
		fields:    fields,
		payment:   payment,
		logistics: logistics,
		log:       log,
	}
}

// notifyPayload mirrors the decrypted JSON body of a payment notify.
type notifyPayload struct {
	Status  string        `json:"Status"`
	Message string        `json:"Message"`
	Result  *notifyResult `json:"Result"`
}

type notifyResult struct {
	MerchantOrderNo string      `json:"MerchantOrderNo"`
	TradeNo         string      `json:"TradeNo"`
	PaymentType     string      `json:"PaymentType"`
	Amt             json.Number `json:"Amt"`
}

// VerifyPaymentNotify authenticates a payment webhook body and maps the
// decoded payload to a PaymentResult.
func (v *CallbackVerifierImpl) VerifyPaymentNotify(form url.Values) (*domain.PaymentResult, error) {
	env := domain.TradeEnvelope{
		CipherText: form.Get(v.fields.PaymentCipher),
		Signature:  form.Get(v.fields.PaymentHash),
	}
	if env.CipherText == "" || env.Signature == "" {
		return nil, apperror.Validation("callback is missing envelope fields")
	}

	plain, err := v.codec.Open(env, v.payment)
	if err != nil {
		v.log.Warn().Err(err).Msg("payment notify rejected")
		return nil, err
	}

	result, err := parseNotifyPlaintext(plain)
	if err != nil {
		return nil, err
	}
	if result.OrderNo == "" {
		return nil, apperror.Validation("payment notify carries no order number")
	}

	v.log.Info().
		Str("order_no", result.OrderNo).
		Str("trade_no", result.TradeNo).
		Str("payment_type", result.PaymentType).
		Bool("succeeded", result.Succeeded).
		Msg("payment notify verified")

	return result, nil
}

// parseNotifyPlaintext handles both payload shapes the provider emits: a
// JSON document with an optional Result wrapper, or a flat querystring.
func parseNotifyPlaintext(plain string) (*domain.PaymentResult, error) {
	var payload notifyPayload
	if err := json.Unmarshal([]byte(plain), &payload); err == nil && (payload.Status != "" || payload.Result != nil) {
		r := payload.Result
		if r == nil {
			r = &notifyResult{}
		}
		amt, _ := r.Amt.Int64()
		return &domain.PaymentResult{
			OrderNo:     r.MerchantOrderNo,
			TradeNo:     r.TradeNo,
			PaymentType: strings.ToUpper(r.PaymentType),
			Amount:      amt,
			Succeeded:   payload.Status == "SUCCESS",
		}, nil
	}

	params, err := domain.ParseParams(plain)
	if err != nil {
		return nil, apperror.ErrDecryptionFailure(err)
	}
	var amt int64
	if n := params.Get("Amt"); n != "" {
		amt, _ = json.Number(n).Int64()
	}
	return &domain.PaymentResult{
		OrderNo:     params.Get("MerchantOrderNo"),
		TradeNo:     params.Get("TradeNo"),
		PaymentType: strings.ToUpper(params.Get("PaymentType")),
		Amount:      amt,
		Succeeded:   params.Get("Status") == "SUCCESS",
	}, nil
}

// VerifyStorePick authenticates a map-picker webhook body and resolves the
// decoded store attributes through the alias table.
func (v *CallbackVerifierImpl) VerifyStorePick(form url.Values) (*domain.StoreSelection, error) {
	if status := form.Get(v.fields.LogisticsStatus); status != "" && status != "SUCCESS" {
		return nil, apperror.Validation("store pick status " + status)
	}

	env := domain.TradeEnvelope{
		CipherText: form.Get(v.fields.LogisticsCipher),
		Signature:  form.Get(v.fields.LogisticsHash),
	}
	if env.CipherText == "" || env.Signature == "" {
		return nil, apperror.Validation("callback is missing envelope fields")
	}

	params, err := v.codec.Decode(env, v.logistics)
	if err != nil {
		v.log.Warn().Err(err).Msg("store pick rejected")
		return nil, err
	}

	sel := &domain.StoreSelection{
		StoreID:      resolveAlias(params, "id"),
		StoreName:    resolveAlias(params, "name"),
		StoreAddress: resolveAlias(params, "address"),
	}
	if sel.StoreID == "" {
		return nil, apperror.Validation("store pick carries no store id")
	}

	v.log.Info().
		Str("store_id", sel.StoreID).
		Str("store_name", sel.StoreName).
		Msg("store pick verified")

	return sel, nil
}

func resolveAlias(params domain.Params, canonical string) string {
	for _, name := range storeFieldAliases[canonical] {
		if v := params.Get(name); v != "" {
			return v
		}
	}
	return ""
}
