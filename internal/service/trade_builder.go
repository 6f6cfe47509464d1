package service

import (
	"context"
	"strconv"
	"time"

	"hemstore-gateway/internal/core/domain"
	"hemstore-gateway/internal/core/ports"
	"hemstore-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// TradeBuilderConfig holds the gateway endpoints, callback bases and
// credential profiles the outbound builder works with. Profiles are
// immutable after startup and shared freely across handlers.
type TradeBuilderConfig struct {
	MPGURL        string
	StoreMapURL   string
	NotifyBaseURL string // must be public https:443 for provider notify
	ClientBaseURL string
	ItemDesc      string
	TradeLimitSec int
	FieldSuffix   string // logistics field revision: "_" (underscored) or ""
	Payment       domain.CredentialProfile
	Logistics     domain.CredentialProfile
}

// TradeBuilderImpl implements ports.TradeBuilder.
type TradeBuilderImpl struct {
	orderRepo ports.OrderRepository
	codec     ports.EnvelopeCodec
	cfg       TradeBuilderConfig
	log       zerolog.Logger
	now       func() time.Time
}

// NewTradeBuilder creates a new TradeBuilderImpl.
func NewTradeBuilder(orderRepo ports.OrderRepository, codec ports.EnvelopeCodec, cfg TradeBuilderConfig, log zerolog.Logger) *TradeBuilderImpl {
	return &TradeBuilderImpl{
		orderRepo: orderRepo,
		codec:     codec,
		cfg:       cfg,
		log:       log,
		now:       time.Now,
	}
}

// BuildPaymentForm assembles the MPG trade request for an order. The
// credential profile is checked first: a request with blank credential
// fields must never reach the provider.
func (b *TradeBuilderImpl) BuildPaymentForm(ctx context.Context, orderNo string) (*ports.GatewayForm, error) {
	if b.cfg.Payment.IsAbsent() {
		return nil, apperror.ErrConfigurationMissing(string(domain.PurposePayment))
	}
	if err := b.cfg.Payment.Validate(); err != nil {
		return nil, apperror.ErrConfigurationInvalid(string(domain.PurposePayment), err)
	}

	order, err := b.orderRepo.GetByOrderNo(ctx, orderNo)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if order == nil {
		return nil, apperror.ErrOrderNotFound()
	}
	if order.Status == domain.OrderStatusPaid {
		return nil, apperror.ErrOrderAlreadyPaid()
	}

	email := "test@example.com"
	if order.CustomerEmail != nil && *order.CustomerEmail != "" {
		email = *order.CustomerEmail
	}

	merchantOrderNo := domain.SanitizeOrderNo(order.OrderNo)

	var trade domain.Params
	trade.Add("MerchantID", b.cfg.Payment.Identifier)
	trade.Add("RespondType", "JSON")
	trade.Add("TimeStamp", strconv.FormatInt(b.now().Unix(), 10))
	trade.Add("Version", "2.0")
	trade.Add("MerchantOrderNo", merchantOrderNo)
	trade.Add("Amt", strconv.FormatInt(order.Total, 10))
	trade.Add("ItemDesc", b.cfg.ItemDesc)
	trade.Add("Email", email)
	trade.Add("LoginType", "0")
	trade.Add("TradeLimit", strconv.Itoa(b.cfg.TradeLimitSec))
	trade.Add("NotifyURL", b.cfg.NotifyBaseURL+"/api/pay/notify")
	trade.Add("ReturnURL", b.cfg.ClientBaseURL+"/api/pay/return")
	trade.Add("ClientBackURL", b.cfg.ClientBaseURL+"/orders/"+order.OrderNo)
	trade.Add("CREDIT", "1")

	env, err := b.codec.Encode(trade, b.cfg.Payment)
	if err != nil {
		return nil, err
	}

	b.log.Info().
		Str("order_no", order.OrderNo).
		Str("merchant_order_no", merchantOrderNo).
		Int64("amount", order.Total).
		Msg("payment form built")

	return &ports.GatewayForm{
		Action: b.cfg.MPGURL,
		Fields: []ports.FormField{
			{Name: "MerchantID", Value: b.cfg.Payment.Identifier},
			{Name: "TradeInfo", Value: env.CipherText},
			{Name: "TradeSha", Value: env.Signature},
			{Name: "Version", Value: "2.0"},
		},
	}, nil
}

// BuildStoreMapForm assembles the store-picker request. The picker flow
// precedes order creation, so the reference number is generated per
// request.
func (b *TradeBuilderImpl) BuildStoreMapForm(ctx context.Context, req ports.StoreMapRequest) (*ports.GatewayForm, error) {
	profile := b.cfg.Logistics
	if profile.IsAbsent() {
		return nil, apperror.ErrConfigurationMissing(string(domain.PurposeLogistics))
	}
	if err := profile.Validate(); err != nil {
		return nil, apperror.ErrConfigurationInvalid(string(domain.PurposeLogistics), err)
	}

	now := b.now()
	refNo := "MAP_" + strconv.FormatInt(now.UnixMilli(), 36)
	if len(refNo) > 30 {
		refNo = refNo[:30]
	}

	var enc domain.Params
	enc.Add("MerchantOrderNo", refNo)
	enc.Add("LgsType", req.LogisticsType)
	enc.Add("ShipType", req.ShipType)
	enc.Add("ReturnURL", b.cfg.ClientBaseURL+"/api/cvs/callback")
	enc.Add("TimeStamp", strconv.FormatInt(now.Unix(), 10))

	env, err := b.codec.Encode(enc, profile)
	if err != nil {
		return nil, err
	}

	sfx := b.cfg.FieldSuffix
	return &ports.GatewayForm{
		Action: b.cfg.StoreMapURL,
		Fields: []ports.FormField{
			{Name: "UID" + sfx, Value: profile.Identifier},
			{Name: "Version" + sfx, Value: "1.0"},
			{Name: "RespondType" + sfx, Value: "JSON"},
			{Name: "EncryptData" + sfx, Value: env.CipherText},
			{Name: "HashData" + sfx, Value: env.Signature},
		},
	}, nil
}
