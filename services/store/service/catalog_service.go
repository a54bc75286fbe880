package service

import (
	"fmt"
	"time"

	"wax/pkg/dto"
	"wax/pkg/models"

	"github.com/google/uuid"
)

type ProductRepo interface {
	Insert(product models.Product) error
	Get(id string) (*models.Product, error)
	List(category string) ([]models.Product, error)
	Update(product models.Product) error
	Delete(id string) error
	AdjustStock(id string, delta int) error
}

type VinylRepo interface {
	Insert(listing models.VinylListing) error
	Get(id string) (*models.VinylListing, error)
	ListActive() ([]models.VinylListing, error)
	ListBySeller(sellerID int) ([]models.VinylListing, error)
	UpdateStatus(id string, status string) error
	Update(listing models.VinylListing) error
}

type CatalogService struct {
	products ProductRepo
	vinyl    VinylRepo
}

func NewCatalogService(products ProductRepo, vinyl VinylRepo) *CatalogService {
	return &CatalogService{
		products: products,
		vinyl:    vinyl,
	}
}

func (s *CatalogService) CreateProduct(req dto.ProductDTO) (*models.Product, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if req.PriceCents < 0 {
		return nil, fmt.Errorf("product price must not be negative")
	}

	now := time.Now()
	product := models.Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		PriceCents:  req.PriceCents,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.products.Insert(product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (s *CatalogService) GetProduct(id string) (*models.Product, error) {
	return s.products.Get(id)
}

func (s *CatalogService) ListProducts(category string) ([]models.Product, error) {
	products, err := s.products.List(category)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

func (s *CatalogService) UpdateProduct(id string, req dto.ProductDTO) (*models.Product, error) {
	product, err := s.products.Get(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("product not found")
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Category = req.Category
	product.PriceCents = req.PriceCents
	product.Stock = req.Stock
	product.ImageURL = req.ImageURL
	product.UpdatedAt = time.Now()

	if err := s.products.Update(*product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *CatalogService) DeleteProduct(id string) error {
	return s.products.Delete(id)
}

func (s *CatalogService) CreateListing(sellerID int, req dto.VinylListingDTO) (*models.VinylListing, error) {
	if req.Artist == "" || req.Title == "" {
		return nil, fmt.Errorf("artist and title are required")
	}
	if req.PriceCents <= 0 {
		return nil, fmt.Errorf("listing price must be positive")
	}

	now := time.Now()
	listing := models.VinylListing{
		ID:         uuid.NewString(),
		SellerID:   sellerID,
		Artist:     req.Artist,
		Title:      req.Title,
		Label:      req.Label,
		Condition:  req.Condition,
		PriceCents: req.PriceCents,
		ImageURL:   req.ImageURL,
		Status:     models.ListingStatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.vinyl.Insert(listing); err != nil {
		return nil, err
	}

	return &listing, nil
}

func (s *CatalogService) GetListing(id string) (*models.VinylListing, error) {
	return s.vinyl.Get(id)
}

func (s *CatalogService) ListActiveListings() ([]models.VinylListing, error) {
	listings, err := s.vinyl.ListActive()
	if err != nil {
		return nil, err
	}
	if listings == nil {
		listings = []models.VinylListing{}
	}
	return listings, nil
}

func (s *CatalogService) ListSellerListings(sellerID int) ([]models.VinylListing, error) {
	listings, err := s.vinyl.ListBySeller(sellerID)
	if err != nil {
		return nil, err
	}
	if listings == nil {
		listings = []models.VinylListing{}
	}
	return listings, nil
}

// RemoveListing: 판매자 본인만 리스팅을 내릴 수 있음
func (s *CatalogService) RemoveListing(sellerID int, id string) error {
	listing, err := s.vinyl.Get(id)
	if err != nil {
		return err
	}
	if listing == nil {
		return fmt.Errorf("vinyl listing not found")
	}
	if listing.SellerID != sellerID {
		return fmt.Errorf("listing belongs to another seller")
	}
	if listing.Status == models.ListingStatusSold {
		return fmt.Errorf("sold listing cannot be removed")
	}

	return s.vinyl.UpdateStatus(id, models.ListingStatusRemoved)
}

// MarkListingSold: 결제 완료된 리스팅을 판매 완료 처리
func (s *CatalogService) MarkListingSold(id string) error {
	return s.vinyl.UpdateStatus(id, models.ListingStatusSold)
}

// AdjustStock: 재고 보정 (관리용)
func (s *CatalogService) AdjustStock(id string, delta int) error {
	product, err := s.products.Get(id)
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("product not found")
	}
	if product.Stock+delta < 0 {
		return fmt.Errorf("stock cannot go negative")
	}

	return s.products.AdjustStock(id, delta)
}
