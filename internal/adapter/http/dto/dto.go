package dto

import (
	"hemstore-gateway/internal/core/domain"
	"hemstore-gateway/internal/core/ports"
)

// CartItem is one cart line in an order creation request.
type CartItem struct {
	ProductID string  `json:"product_id" binding:"required,max=64"`
	Name      string  `json:"name" binding:"max=200"`
	Price     int64   `json:"price" binding:"required,gte=0"`
	Qty       int     `json:"qty" binding:"gte=0,lte=99"`
	Image     *string `json:"image,omitempty"`
}

// CreateOrderRequest is the request body for order creation.
type CreateOrderRequest struct {
	Items         []CartItem `json:"items" binding:"required,min=1,max=50,dive"`
	CustomerName  *string    `json:"customer_name,omitempty" binding:"omitempty,max=100"`
	CustomerPhone *string    `json:"customer_phone,omitempty" binding:"omitempty,max=30"`
	CustomerEmail *string    `json:"customer_email,omitempty" binding:"omitempty,email"`
	Note          *string    `json:"note,omitempty" binding:"omitempty,max=500"`
	ShipMethod    string     `json:"ship_method" binding:"required,oneof=POST CVS"`
	PickupStore   *string    `json:"pickup_store,omitempty" binding:"omitempty,max=20"`
}

// ToPort converts the request into the service-layer form.
func (r CreateOrderRequest) ToPort() ports.CreateOrderRequest {
	items := make([]ports.CreateOrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, ports.CreateOrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Qty:       it.Qty,
			Image:     it.Image,
		})
	}
	return ports.CreateOrderRequest{
		Items:         items,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		CustomerEmail: r.CustomerEmail,
		Note:          r.Note,
		ShipMethod:    domain.ShipMethod(r.ShipMethod),
		PickupStore:   r.PickupStore,
	}
}

// CreateOrderResponse is the response body for successful order creation.
type CreateOrderResponse struct {
	OrderNo string `json:"order_no"`
	Status  string `json:"status"`
	Total   int64  `json:"total"`
}

// LookupOrderRequest is the request body for the public order lookup.
// Contact is either the order email or phone; which one is inferred from
// its shape.
type LookupOrderRequest struct {
	OrderNo string `json:"order_no" binding:"required,max=20"`
	Contact string `json:"contact" binding:"required,max=100"`
}

// PayStartRequest is the request body for starting a gateway payment.
type PayStartRequest struct {
	OrderNo string `json:"order_no" binding:"required,max=20"`
}

// StoreMapQuery holds the query parameters for opening the store picker.
type StoreMapQuery struct {
	LgsType  string `form:"lgs_type" binding:"omitempty,oneof=C2C B2C"`
	ShipType string `form:"ship_type" binding:"omitempty,oneof=1 2 3 4"`
}
