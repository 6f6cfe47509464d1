package domain

import "strings"

// PaymentResult is the decoded business event carried by a verified payment
// notify callback.
type PaymentResult struct {
	OrderNo     string
	TradeNo     string
	PaymentType string
	Amount      int64
	Succeeded   bool // gateway-level Status == SUCCESS
}

// IsCreditCard reports whether the payment kind settles synchronously.
// Only credit-card success is terminal on notify; bank transfer and
// store-payment kinds stay PENDING until a later confirmation, because the
// money has not actually moved yet.
func (r PaymentResult) IsCreditCard() bool {
	return strings.HasPrefix(strings.ToUpper(r.PaymentType), "CREDIT")
}

// StoreSelection is the decoded result of the gateway's store-picker map.
// It is session-scoped and never persisted: the picker flow precedes order
// creation, so there is no order to attach it to.
type StoreSelection struct {
	StoreID      string `json:"store_id"`
	StoreName    string `json:"store_name"`
	StoreAddress string `json:"store_address"`
}
