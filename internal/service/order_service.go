package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hemstore-gateway/internal/core/domain"
	"hemstore-gateway/internal/core/ports"
	"hemstore-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Flat convenience-store shipping fee in minor units.
const shippingFee = 60

// Lookup responses cap the item list to avoid dumping whole orders to an
// unauthenticated endpoint.
const lookupMaxItems = 5

// OrderServiceImpl implements ports.OrderService.
type OrderServiceImpl struct {
	orderRepo  ports.OrderRepository
	transactor ports.DBTransactor
	log        zerolog.Logger
	now        func() time.Time
}

// NewOrderService creates a new OrderServiceImpl.
func NewOrderService(orderRepo ports.OrderRepository, transactor ports.DBTransactor, log zerolog.Logger) *OrderServiceImpl {
	return &OrderServiceImpl{
		orderRepo:  orderRepo,
		transactor: transactor,
		log:        log,
		now:        time.Now,
	}
}

// Create normalizes the cart, totals it and persists the order PENDING.
func (s *OrderServiceImpl) Create(ctx context.Context, req ports.CreateOrderRequest) (*domain.Order, error) {
	if len(req.Items) == 0 {
		return nil, apperror.ErrEmptyCart()
	}

	now := s.now().UTC()
	orderID := uuid.New()

	var subTotal int64
	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		if it.Price < 0 {
			return nil, apperror.Validation("item price must not be negative")
		}
		qty := it.Qty
		if qty < 1 {
			qty = 1
		}
		name := it.Name
		if name == "" {
			name = "item"
		}
		subTotal += it.Price * int64(qty)
		items = append(items, domain.OrderItem{
			ID:        uuid.New(),
			OrderID:   orderID,
			ProductID: it.ProductID,
			Name:      name,
			Price:     it.Price,
			Qty:       qty,
			Image:     it.Image,
		})
	}

	order := &domain.Order{
		ID:            orderID,
		OrderNo:       s.generateOrderNo(now),
		Status:        domain.OrderStatusPending,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		Note:          req.Note,
		ShipMethod:    req.ShipMethod,
		PickupStore:   req.PickupStore,
		SubTotal:      subTotal,
		Shipping:      shippingFee,
		Total:         subTotal + shippingFee,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := s.orderRepo.Create(ctx, tx, order, items); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create order: %w", err))
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("order_no", order.OrderNo).
		Int64("total", order.Total).
		Int("items", len(items)).
		Msg("order created")

	return order, nil
}

// generateOrderNo produces a gateway-legal order number:
// HEM_<yyyymmdd>_<6 hex chars>, 19 characters total.
func (s *OrderServiceImpl) generateOrderNo(now time.Time) string {
	entropy := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:6]
	return fmt.Sprintf("HEM_%s_%s", now.Format("20060102"), entropy)
}

// Lookup returns an order summary when both the order number and a second
// contact factor match. Unknown orders and mismatches produce the same
// response so existence is not leaked.
func (s *OrderServiceImpl) Lookup(ctx context.Context, orderNo, contact string) (*ports.OrderSummary, error) {
	orderNo = strings.TrimSpace(orderNo)
	contact = strings.TrimSpace(contact)
	if orderNo == "" || contact == "" {
		return nil, apperror.Validation("order number and contact are required")
	}

	order, err := s.orderRepo.GetByOrderNo(ctx, orderNo)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if order == nil {
		return nil, apperror.ErrLookupMismatch()
	}

	if !contactMatches(order, contact) {
		return nil, apperror.ErrLookupMismatch()
	}

	summary, err := s.buildSummary(ctx, order, lookupMaxItems)
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// GetByOrderNo returns the full order summary for the order page.
func (s *OrderServiceImpl) GetByOrderNo(ctx context.Context, orderNo string) (*ports.OrderSummary, error) {
	order, err := s.orderRepo.GetByOrderNo(ctx, strings.TrimSpace(orderNo))
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if order == nil {
		return nil, apperror.ErrOrderNotFound()
	}
	return s.buildSummary(ctx, order, 0)
}

func (s *OrderServiceImpl) buildSummary(ctx context.Context, order *domain.Order, maxItems int) (*ports.OrderSummary, error) {
	items, err := s.orderRepo.GetItems(ctx, order.ID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if maxItems > 0 && len(items) > maxItems {
		items = items[:maxItems]
	}
	return &ports.OrderSummary{
		OrderNo:     order.OrderNo,
		Status:      order.Status,
		ShipMethod:  order.ShipMethod,
		PickupStore: order.PickupStore,
		SubTotal:    order.SubTotal,
		Shipping:    order.Shipping,
		Total:       order.Total,
		CreatedAt:   order.CreatedAt,
		Items:       items,
	}, nil
}

func contactMatches(order *domain.Order, contact string) bool {
	if strings.Contains(contact, "@") {
		email := ""
		if order.CustomerEmail != nil {
			email = *order.CustomerEmail
		}
		return strings.EqualFold(strings.TrimSpace(email), contact)
	}
	phone := ""
	if order.CustomerPhone != nil {
		phone = *order.CustomerPhone
	}
	return normalizePhone(phone) != "" && normalizePhone(phone) == normalizePhone(contact)
}

func normalizePhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
