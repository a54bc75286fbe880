package service

import (
	"encoding/json"
	"fmt"
	"time"

	"wax/pkg/dto"
	"wax/pkg/logger"
	"wax/pkg/models"
	eventtypes "wax/pkg/types/eventtype"

	"github.com/google/uuid"
)

// 주문 품목 종류
const (
	ItemKindMerch   = "merch"
	ItemKindVinyl   = "vinyl"
	ItemKindDigital = "digital"
)

type OrderRepo interface {
	Insert(order models.Order) error
	Get(id string) (*models.Order, error)
	ListByUser(userID int) ([]models.Order, error)
	UpdateStatus(id string, status, trackingNumber string) error
}

// Catalog은 주문 생성 시 가격 확정과 재고 처리를 담당합니다
type Catalog interface {
	GetProduct(id string) (*models.Product, error)
	GetListing(id string) (*models.VinylListing, error)
	AdjustStock(id string, delta int) error
	MarkListingSold(id string) error
}

type OrderMailEmitter interface {
	PublishOrderMail(event eventtypes.OrderMailEvent) error
	PublishOrderPaid(event eventtypes.OrderPaidEvent) error
}

type OrderService struct {
	repo    OrderRepo
	catalog Catalog
	emitter OrderMailEmitter
}

func NewOrderService(repo OrderRepo, catalog Catalog, emitter OrderMailEmitter) *OrderService {
	return &OrderService{
		repo:    repo,
		catalog: catalog,
		emitter: emitter,
	}
}

// Create: 장바구니 품목의 가격을 서버에서 확정하고 pending 주문 생성
func (s *OrderService) Create(userID int, req dto.CreateOrderDTO) (*models.Order, error) {
	if req.Email == "" {
		return nil, fmt.Errorf("order email is required")
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("order must contain at least one item")
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	total := 0

	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("item quantity must be positive")
		}

		switch item.Kind {
		case ItemKindMerch, ItemKindDigital:
			product, err := s.catalog.GetProduct(item.ItemID)
			if err != nil {
				return nil, err
			}
			if product == nil {
				return nil, fmt.Errorf("product %s not found", item.ItemID)
			}
			if item.Kind == ItemKindMerch && product.Stock < item.Quantity {
				return nil, fmt.Errorf("insufficient stock for %s", product.Name)
			}

			items = append(items, models.OrderItem{
				ItemID:     product.ID,
				Kind:       item.Kind,
				Title:      product.Name,
				PriceCents: product.PriceCents,
				Quantity:   item.Quantity,
			})
			total += product.PriceCents * item.Quantity

		case ItemKindVinyl:
			listing, err := s.catalog.GetListing(item.ItemID)
			if err != nil {
				return nil, err
			}
			if listing == nil {
				return nil, fmt.Errorf("vinyl listing %s not found", item.ItemID)
			}
			if listing.Status != models.ListingStatusActive {
				return nil, fmt.Errorf("vinyl listing %s is no longer available", item.ItemID)
			}
			if item.Quantity != 1 {
				return nil, fmt.Errorf("vinyl listings are single items")
			}

			items = append(items, models.OrderItem{
				ItemID:     listing.ID,
				Kind:       ItemKindVinyl,
				Title:      fmt.Sprintf("%s - %s", listing.Artist, listing.Title),
				PriceCents: listing.PriceCents,
				Quantity:   1,
			})
			total += listing.PriceCents

		default:
			return nil, fmt.Errorf("unknown item kind: %s", item.Kind)
		}
	}

	now := time.Now()
	order := models.Order{
		ID:         uuid.NewString(),
		UserID:     userID,
		Email:      req.Email,
		Items:      items,
		TotalCents: total,
		Status:     models.OrderStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Insert(order); err != nil {
		return nil, err
	}

	logger.Info(logger.LogEventOrderCreate, "Order created", map[string]interface{}{
		"order_id":    order.ID,
		"user_id":     userID,
		"total_cents": total,
	})

	return &order, nil
}

func (s *OrderService) Get(userID int, id string) (*models.Order, error) {
	order, err := s.repo.Get(id)
	if err != nil {
		return nil, err
	}
	if order == nil || order.UserID != userID {
		return nil, fmt.Errorf("order not found")
	}
	return order, nil
}

func (s *OrderService) ListByUser(userID int) ([]models.Order, error) {
	orders, err := s.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

// UpdateStatus: 상태 전이 테이블 검증 후 갱신, 부수 효과는 전이별로 처리
func (s *OrderService) UpdateStatus(id string, req dto.UpdateOrderStatusDTO) (*models.Order, error) {
	order, err := s.repo.Get(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("order not found")
	}
	if !order.CanTransition(req.Status) {
		return nil, fmt.Errorf("order cannot move from %s to %s", order.Status, req.Status)
	}

	if err := s.repo.UpdateStatus(id, req.Status, req.TrackingNumber); err != nil {
		return nil, err
	}

	order.Status = req.Status
	if req.TrackingNumber != "" {
		order.TrackingNumber = req.TrackingNumber
	}
	order.UpdatedAt = time.Now()

	switch req.Status {
	case models.OrderStatusPaid:
		s.settlePaidOrder(order)
	case models.OrderStatusShipped:
		s.notifyShipped(order)
	}

	logger.Info(logger.LogEventOrderStatusChange, "Order status changed", map[string]interface{}{
		"order_id": order.ID,
		"status":   order.Status,
	})

	return order, nil
}

// settlePaidOrder: 재고 차감, 리스팅 판매 처리, 메일/결제 이벤트 발행
func (s *OrderService) settlePaidOrder(order *models.Order) {
	for _, item := range order.Items {
		switch item.Kind {
		case ItemKindMerch:
			if err := s.catalog.AdjustStock(item.ItemID, -item.Quantity); err != nil {
				logger.Error(logger.LogEventError, "Failed to decrement stock", map[string]interface{}{
					"order_id": order.ID,
					"item_id":  item.ItemID,
				})
			}
		case ItemKindVinyl:
			if err := s.catalog.MarkListingSold(item.ItemID); err != nil {
				logger.Error(logger.LogEventError, "Failed to mark listing sold", map[string]interface{}{
					"order_id": order.ID,
					"item_id":  item.ItemID,
				})
			}
		}
	}

	if err := s.emitter.PublishOrderMail(eventtypes.OrderMailEvent{
		OrderID:    order.ID,
		Email:      order.Email,
		Status:     order.Status,
		TotalCents: order.TotalCents,
	}); err != nil {
		logger.Error(logger.LogEventError, "Failed to publish order mail event", map[string]interface{}{
			"order_id": order.ID,
		})
	}

	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		logger.Error(logger.LogEventError, "Failed to marshal order items", map[string]interface{}{
			"order_id": order.ID,
		})
		return
	}
	if err := s.emitter.PublishOrderPaid(eventtypes.OrderPaidEvent{
		OrderID: order.ID,
		UserID:  order.UserID,
		Items:   itemsJSON,
	}); err != nil {
		logger.Error(logger.LogEventError, "Failed to publish order paid event", map[string]interface{}{
			"order_id": order.ID,
		})
	}
}

func (s *OrderService) notifyShipped(order *models.Order) {
	if err := s.emitter.PublishOrderMail(eventtypes.OrderMailEvent{
		OrderID:        order.ID,
		Email:          order.Email,
		Status:         order.Status,
		TotalCents:     order.TotalCents,
		TrackingNumber: order.TrackingNumber,
	}); err != nil {
		logger.Error(logger.LogEventError, "Failed to publish order mail event", map[string]interface{}{
			"order_id": order.ID,
		})
	}
}
