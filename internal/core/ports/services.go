package ports

import (
	"context"
	"net/url"
	"time"

	"hemstore-gateway/internal/core/domain"
)

// EnvelopeCodec is the pure transformation between plaintext parameter sets
// and authenticated ciphertext, parameterized by a credential profile.
type EnvelopeCodec interface {
	// Encode serializes, encrypts and signs a parameter set.
	Encode(params domain.Params, profile domain.CredentialProfile) (*domain.TradeEnvelope, error)
	// Open verifies the envelope signature and, only on success, decrypts
	// the ciphertext to its plaintext string.
	Open(env domain.TradeEnvelope, profile domain.CredentialProfile) (string, error)
	// Decode is Open plus parsing of the plaintext back into a flat
	// parameter set.
	Decode(env domain.TradeEnvelope, profile domain.CredentialProfile) (domain.Params, error)
}

// FormField is one hidden input of a gateway-bound auto-submitting form.
type FormField struct {
	Name  string
	Value string
}

// GatewayForm is the provider-bound request the outbound builder emits: a
// target URL plus the fields the provider's transport requires. The HTTP
// layer renders it as a self-submitting form.
type GatewayForm struct {
	Action string
	Fields []FormField
}

// StoreMapRequest holds the business parameters for opening the gateway's
// store-picker map.
type StoreMapRequest struct {
	LogisticsType string // C2C / B2C
	ShipType      string // 1=7-ELEVEN, 2=FamilyMart, 3=Hi-Life, 4=OK mart
}

// TradeBuilder assembles authenticated outbound requests for the two
// gateway operations.
type TradeBuilder interface {
	BuildPaymentForm(ctx context.Context, orderNo string) (*GatewayForm, error)
	BuildStoreMapForm(ctx context.Context, req StoreMapRequest) (*GatewayForm, error)
}

// CallbackVerifier authenticates inbound webhook bodies and maps them to
// typed business events. Rejections are typed errors, never panics, so the
// HTTP layer can answer the provider without acknowledging consumption.
type CallbackVerifier interface {
	VerifyPaymentNotify(form url.Values) (*domain.PaymentResult, error)
	VerifyStorePick(form url.Values) (*domain.StoreSelection, error)
}

// SettlementService applies verified payment events to persisted order
// state under the exactly-once guarantee.
type SettlementService interface {
	// ApplyPaymentResult transitions the order per the event. Redelivery of
	// the same event is a no-op. Returns apperror.ErrOrderNotFound when the
	// order does not exist; the caller still acknowledges the provider.
	ApplyPaymentResult(ctx context.Context, result *domain.PaymentResult) error
	// RecordRefund marks a PAID order REFUNDED. Refund initiation itself
	// lives outside this core; this only records the instructed state.
	RecordRefund(ctx context.Context, orderNo string) error
}

// StoreRelay hands a verified store selection back to the browser session
// that opened the picker, via a signed short-lived ticket when no live
// opener window exists.
type StoreRelay interface {
	IssueTicket(sel domain.StoreSelection, now time.Time) (string, error)
	RedeemTicket(token string, now time.Time) (*domain.StoreSelection, error)
	TTL() time.Duration
}

// CreateOrderItem is one raw cart line from the storefront.
type CreateOrderItem struct {
	ProductID string
	Name      string
	Price     int64
	Qty       int
	Image     *string
}

// CreateOrderRequest holds validated input for order creation.
type CreateOrderRequest struct {
	Items         []CreateOrderItem
	CustomerName  *string
	CustomerPhone *string
	CustomerEmail *string
	Note          *string
	ShipMethod    domain.ShipMethod
	PickupStore   *string
}

// OrderSummary is the narrow view returned by the public lookup endpoint.
type OrderSummary struct {
	OrderNo     string             `json:"order_no"`
	Status      domain.OrderStatus `json:"status"`
	ShipMethod  domain.ShipMethod  `json:"ship_method"`
	PickupStore *string            `json:"pickup_store,omitempty"`
	SubTotal    int64              `json:"sub_total"`
	Shipping    int64              `json:"shipping"`
	Total       int64              `json:"total"`
	CreatedAt   time.Time          `json:"created_at"`
	Items       []domain.OrderItem `json:"items"`
}

// OrderService defines the storefront-facing order operations.
type OrderService interface {
	Create(ctx context.Context, req CreateOrderRequest) (*domain.Order, error)
	Lookup(ctx context.Context, orderNo, contact string) (*OrderSummary, error)
	GetByOrderNo(ctx context.Context, orderNo string) (*OrderSummary, error)
}
