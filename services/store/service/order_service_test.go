package service

import (
	"testing"

	"wax/pkg/dto"
	"wax/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderRepo struct {
	orders map[string]models.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]models.Order)}
}

func (f *fakeOrderRepo) Insert(order models.Order) error {
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) Get(id string) (*models.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	return &order, nil
}

func (f *fakeOrderRepo) ListByUser(userID int) ([]models.Order, error) {
	var orders []models.Order
	for _, order := range f.orders {
		if order.UserID == userID {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func (f *fakeOrderRepo) UpdateStatus(id string, status, trackingNumber string) error {
	order := f.orders[id]
	order.Status = status
	if trackingNumber != "" {
		order.TrackingNumber = trackingNumber
	}
	f.orders[id] = order
	return nil
}

type fakeCatalog struct {
	products map[string]models.Product
	listings map[string]models.VinylListing
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		products: make(map[string]models.Product),
		listings: make(map[string]models.VinylListing),
	}
}

func (f *fakeCatalog) GetProduct(id string) (*models.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	return &product, nil
}

func (f *fakeCatalog) GetListing(id string) (*models.VinylListing, error) {
	listing, ok := f.listings[id]
	if !ok {
		return nil, nil
	}
	return &listing, nil
}

func (f *fakeCatalog) AdjustStock(id string, delta int) error {
	product := f.products[id]
	product.Stock += delta
	f.products[id] = product
	return nil
}

func (f *fakeCatalog) MarkListingSold(id string) error {
	listing := f.listings[id]
	listing.Status = models.ListingStatusSold
	f.listings[id] = listing
	return nil
}

func newOrderFixture() (*OrderService, *fakeOrderRepo, *fakeCatalog, *fakeMailEmitter) {
	repo := newFakeOrderRepo()
	catalog := newFakeCatalog()
	emitter := &fakeMailEmitter{}

	catalog.products["tee-1"] = models.Product{
		ID: "tee-1", Name: "Logo Tee", Category: "merch", PriceCents: 2500, Stock: 3,
	}
	catalog.products["rel-1"] = models.Product{
		ID: "rel-1", Name: "Midnight EP", Category: "digital", PriceCents: 900,
	}
	catalog.listings["vin-1"] = models.VinylListing{
		ID: "vin-1", SellerID: 5, Artist: "Unknown Artist", Title: "White Label",
		PriceCents: 4500, Status: models.ListingStatusActive,
	}

	return NewOrderService(repo, catalog, emitter), repo, catalog, emitter
}

func TestCreateOrderResolvesServerPrices(t *testing.T) {
	svc, _, _, _ := newOrderFixture()

	order, err := svc.Create(7, dto.CreateOrderDTO{
		Email: "buyer@example.com",
		Items: []dto.OrderItemDTO{
			{ItemID: "tee-1", Kind: "merch", Quantity: 2},
			{ItemID: "vin-1", Kind: "vinyl", Quantity: 1},
			{ItemID: "rel-1", Kind: "digital", Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 2*2500+4500+900, order.TotalCents)
	require.Len(t, order.Items, 3)
	assert.Equal(t, "Logo Tee", order.Items[0].Title)
	assert.Equal(t, "Unknown Artist - White Label", order.Items[1].Title)
}

func TestCreateOrderRejectsBadItems(t *testing.T) {
	svc, _, _, _ := newOrderFixture()

	// 재고 부족
	_, err := svc.Create(7, dto.CreateOrderDTO{
		Email: "buyer@example.com",
		Items: []dto.OrderItemDTO{{ItemID: "tee-1", Kind: "merch", Quantity: 10}},
	})
	assert.Error(t, err)

	// 없는 상품
	_, err = svc.Create(7, dto.CreateOrderDTO{
		Email: "buyer@example.com",
		Items: []dto.OrderItemDTO{{ItemID: "nope", Kind: "merch", Quantity: 1}},
	})
	assert.Error(t, err)

	// 바이닐은 수량 1만 허용
	_, err = svc.Create(7, dto.CreateOrderDTO{
		Email: "buyer@example.com",
		Items: []dto.OrderItemDTO{{ItemID: "vin-1", Kind: "vinyl", Quantity: 2}},
	})
	assert.Error(t, err)

	// 빈 주문
	_, err = svc.Create(7, dto.CreateOrderDTO{Email: "buyer@example.com"})
	assert.Error(t, err)
}

func TestCreateOrderRejectsInactiveListing(t *testing.T) {
	svc, _, catalog, _ := newOrderFixture()

	listing := catalog.listings["vin-1"]
	listing.Status = models.ListingStatusSold
	catalog.listings["vin-1"] = listing

	_, err := svc.Create(7, dto.CreateOrderDTO{
		Email: "buyer@example.com",
		Items: []dto.OrderItemDTO{{ItemID: "vin-1", Kind: "vinyl", Quantity: 1}},
	})
	assert.Error(t, err)
}

func TestPaidOrderSettlesStockAndListing(t *testing.T) {
	svc, _, catalog, emitter := newOrderFixture()

	order, err := svc.Create(7, dto.CreateOrderDTO{
		Email: "buyer@example.com",
		Items: []dto.OrderItemDTO{
			{ItemID: "tee-1", Kind: "merch", Quantity: 2},
			{ItemID: "vin-1", Kind: "vinyl", Quantity: 1},
		},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(order.ID, dto.UpdateOrderStatusDTO{Status: models.OrderStatusPaid})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPaid, updated.Status)

	assert.Equal(t, 1, catalog.products["tee-1"].Stock)
	assert.Equal(t, models.ListingStatusSold, catalog.listings["vin-1"].Status)

	require.Len(t, emitter.orderMails, 1)
	assert.Equal(t, models.OrderStatusPaid, emitter.orderMails[0].Status)
	require.Len(t, emitter.orderPaid, 1)
	assert.Equal(t, order.ID, emitter.orderPaid[0].OrderID)
}

func TestOrderStatusTransitionTable(t *testing.T) {
	svc, _, _, emitter := newOrderFixture()

	order, err := svc.Create(7, dto.CreateOrderDTO{
		Email: "buyer@example.com",
		Items: []dto.OrderItemDTO{{ItemID: "rel-1", Kind: "digital", Quantity: 1}},
	})
	require.NoError(t, err)

	// pending에서 바로 shipped 불가
	_, err = svc.UpdateStatus(order.ID, dto.UpdateOrderStatusDTO{Status: models.OrderStatusShipped})
	assert.Error(t, err)

	_, err = svc.UpdateStatus(order.ID, dto.UpdateOrderStatusDTO{Status: models.OrderStatusPaid})
	require.NoError(t, err)

	shipped, err := svc.UpdateStatus(order.ID, dto.UpdateOrderStatusDTO{
		Status:         models.OrderStatusShipped,
		TrackingNumber: "KR1234567890",
	})
	require.NoError(t, err)
	assert.Equal(t, "KR1234567890", shipped.TrackingNumber)

	// shipped 메일에 송장 번호 포함
	require.Len(t, emitter.orderMails, 2)
	assert.Equal(t, "KR1234567890", emitter.orderMails[1].TrackingNumber)

	// delivered 이후 전이 불가
	_, err = svc.UpdateStatus(order.ID, dto.UpdateOrderStatusDTO{Status: models.OrderStatusDelivered})
	require.NoError(t, err)
	_, err = svc.UpdateStatus(order.ID, dto.UpdateOrderStatusDTO{Status: models.OrderStatusCancelled})
	assert.Error(t, err)
}

func TestGetOrderScopedToUser(t *testing.T) {
	svc, _, _, _ := newOrderFixture()

	order, err := svc.Create(7, dto.CreateOrderDTO{
		Email: "buyer@example.com",
		Items: []dto.OrderItemDTO{{ItemID: "rel-1", Kind: "digital", Quantity: 1}},
	})
	require.NoError(t, err)

	got, err := svc.Get(7, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	// 다른 유저의 주문은 조회 불가
	_, err = svc.Get(8, order.ID)
	assert.Error(t, err)
}
