package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the lifecycle state of an order.
// PENDING -> {PAID, FAILED}; PAID -> REFUNDED. PAID is sticky: a later
// FAILED event never overwrites it.
type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "PENDING"
	OrderStatusPaid     OrderStatus = "PAID"
	OrderStatusFailed   OrderStatus = "FAILED"
	OrderStatusRefunded OrderStatus = "REFUNDED"
)

// IsTerminal reports whether a payment callback may still transition the
// order. REFUNDED is only ever recorded on top of PAID by an external
// instruction; this core treats all three as terminal for payment events.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusPaid || s == OrderStatusFailed || s == OrderStatusRefunded
}

// ShipMethod is how the order is delivered.
type ShipMethod string

const (
	ShipMethodHome ShipMethod = "POST" // home delivery
	ShipMethodCVS  ShipMethod = "CVS"  // convenience-store pickup
)

// Order is the persisted order record. This core only mutates the narrow
// payment-state subset (status, pay provider/trade no, paid at); everything
// else is owned by the order-creation flow.
type Order struct {
	ID            uuid.UUID   `json:"id"`
	OrderNo       string      `json:"order_no"`
	Status        OrderStatus `json:"status"`
	CustomerName  *string     `json:"customer_name,omitempty"`
	CustomerPhone *string     `json:"customer_phone,omitempty"`
	CustomerEmail *string     `json:"customer_email,omitempty"`
	Note          *string     `json:"note,omitempty"`
	ShipMethod    ShipMethod  `json:"ship_method"`
	PickupStore   *string     `json:"pickup_store,omitempty"`
	SubTotal      int64       `json:"sub_total"` // minor units
	Shipping      int64       `json:"shipping"`
	Total         int64       `json:"total"`
	PayProvider   *string     `json:"pay_provider,omitempty"`
	PayTradeNo    *string     `json:"pay_trade_no,omitempty"`
	PaidAt        *time.Time  `json:"paid_at,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// OrderItem is one purchased line item.
type OrderItem struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	ProductID string    `json:"product_id"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"`
	Qty       int       `json:"qty"`
	Image     *string   `json:"image,omitempty"`
}

var orderNoSanitizer = regexp.MustCompile(`[^A-Za-z0-9_]`)

// SanitizeOrderNo maps an order number onto the gateway's constraint:
// [A-Za-z0-9_], at most 20 characters. Disallowed characters become "_".
func SanitizeOrderNo(orderNo string) string {
	s := orderNoSanitizer.ReplaceAllString(orderNo, "_")
	if len(s) > 20 {
		s = s[:20]
	}
	return s
}

// ValidOrderNo reports whether orderNo already satisfies the gateway
// constraint without rewriting.
func ValidOrderNo(orderNo string) bool {
	return orderNo != "" && len(orderNo) <= 20 && SanitizeOrderNo(orderNo) == orderNo
}
