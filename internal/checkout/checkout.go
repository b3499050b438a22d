// Package checkout turns a cart into a delivered order and fans the
// resulting gamification events out to the vendor.
package checkout

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/osse101/BadgerShop_Go/internal/catalog"
	"github.com/osse101/BadgerShop_Go/internal/domain"
	"github.com/osse101/BadgerShop_Go/internal/event"
	"github.com/osse101/BadgerShop_Go/internal/logger"
	"github.com/osse101/BadgerShop_Go/internal/metrics"
	"github.com/osse101/BadgerShop_Go/internal/worker"
)

// TaxRate applied to the subtotal. Nobody actually pays.
const TaxRate = 0.08

// Service processes checkouts
type Service struct {
	dispatcher *worker.Dispatcher
	bus        event.Bus
	now        func() time.Time
}

// NewService creates a checkout service
func NewService(dispatcher *worker.Dispatcher, bus event.Bus) *Service {
	return &Service{
		dispatcher: dispatcher,
		bus:        bus,
		now:        time.Now,
	}
}

// NewServiceWithClock creates a checkout service with an injected clock
func NewServiceWithClock(dispatcher *worker.Dispatcher, bus event.Bus, now func() time.Time) *Service {
	return &Service{
		dispatcher: dispatcher,
		bus:        bus,
		now:        now,
	}
}

// Checkout builds an order from the cart contents, sends one purchase
// event per line item plus a summary order event, and publishes an
// order-completed event on the bus. The cart is a flat list of product
// ids, one per unit; duplicate ids collapse into a single line.
func (s *Service) Checkout(ctx context.Context, user *domain.UserData, cart []int) (domain.Order, error) {
	if len(cart) == 0 {
		return domain.Order{}, domain.ErrCartEmpty
	}

	items, subtotal, err := buildItems(cart)
	if err != nil {
		return domain.Order{}, err
	}
	total := subtotal + subtotal*TaxRate

	now := s.now()
	order := domain.Order{
		ID:     orderID(now),
		UserID: user.UserID,
		Date:   now.Format("2006-01-02"),
		Total:  total,
		Status: domain.OrderStatusDelivered,
		Items:  items,
	}

	// One purchase event per line item; price carries the line total
	for _, item := range items {
		s.dispatcher.Dispatch(user.UserID, domain.VendorEventPurchase, map[string]string{
			"productId": strconv.Itoa(item.ProductID),
			"price":     formatAmount(item.Price),
		})
	}

	s.dispatcher.Dispatch(user.UserID, domain.VendorEventOrder, map[string]string{
		"total_items": strconv.Itoa(len(items)),
		"total_price": formatAmount(total),
	})

	if err := s.bus.Publish(ctx, event.NewOrderCompletedEvent(order.ID, user.UserID, total, len(items))); err != nil {
		logger.FromContext(ctx).Warn(LogMsgOrderEventPublishFailed, "order_id", order.ID, "error", err)
	}

	metrics.OrdersCompleted.Inc()
	logger.FromContext(ctx).Info(LogMsgOrderCompleted,
		"order_id", order.ID,
		"user_id", user.UserID,
		"items", len(items),
		"total", total)

	return order, nil
}

// buildItems collapses the flat cart into order lines, preserving the
// order products first appear in the cart
func buildItems(cart []int) ([]domain.OrderItem, float64, error) {
	quantities := make(map[int]int, len(cart))
	var ids []int
	for _, id := range cart {
		if quantities[id] == 0 {
			ids = append(ids, id)
		}
		quantities[id]++
	}

	var subtotal float64
	items := make([]domain.OrderItem, 0, len(ids))
	for _, id := range ids {
		product, err := catalog.GetProductByID(id)
		if err != nil {
			return nil, 0, fmt.Errorf("cart item %d: %w", id, err)
		}

		qty := quantities[id]
		lineTotal := product.Price * float64(qty)
		items = append(items, domain.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  qty,
			Price:     lineTotal,
		})
		subtotal += lineTotal
	}
	return items, subtotal, nil
}

// orderID derives a short human-readable id from the checkout time
func orderID(now time.Time) string {
	millis := strconv.FormatInt(now.UnixMilli(), 10)
	return "ORD-" + millis[len(millis)-6:]
}

// formatAmount renders a money amount for vendor event metadata
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
