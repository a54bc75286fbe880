package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"wax/pkg/dto"
	"wax/services/store/service"

	"github.com/go-chi/chi/v5"
)

type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// 상품 등록
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req dto.ProductDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	product, err := h.catalogService.CreateProduct(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(product)
}

// 상품 목록 (category 쿼리로 필터)
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.ListProducts(r.URL.Query().Get("category"))
	if err != nil {
		http.Error(w, "Failed to list products", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}

// 상품 단건 조회
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalogService.GetProduct(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Failed to get product", http.StatusInternalServerError)
		return
	}
	if product == nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(product)
}

// 상품 수정
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req dto.ProductDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	product, err := h.catalogService.UpdateProduct(chi.URLParam(r, "id"), req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "Product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to update product", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(product)
}

// 상품 삭제
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogService.DeleteProduct(chi.URLParam(r, "id")); err != nil {
		http.Error(w, "Failed to delete product", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// 리스팅 등록
func (h *CatalogHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromHeader(w, r)
	if !ok {
		return
	}

	var req dto.VinylListingDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	listing, err := h.catalogService.CreateListing(userID, req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(listing)
}

// 판매 중인 리스팅 목록
func (h *CatalogHandler) ListListings(w http.ResponseWriter, r *http.Request) {
	listings, err := h.catalogService.ListActiveListings()
	if err != nil {
		http.Error(w, "Failed to list vinyl listings", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(listings)
}

// 내 리스팅 목록
func (h *CatalogHandler) ListMyListings(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromHeader(w, r)
	if !ok {
		return
	}

	listings, err := h.catalogService.ListSellerListings(userID)
	if err != nil {
		http.Error(w, "Failed to list vinyl listings", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(listings)
}

// 리스팅 단건 조회
func (h *CatalogHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	listing, err := h.catalogService.GetListing(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Failed to get vinyl listing", http.StatusInternalServerError)
		return
	}
	if listing == nil {
		http.Error(w, "Vinyl listing not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(listing)
}

// 리스팅 내리기
func (h *CatalogHandler) RemoveListing(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromHeader(w, r)
	if !ok {
		return
	}

	if err := h.catalogService.RemoveListing(userID, chi.URLParam(r, "id")); err != nil {
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "Vinyl listing not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	w.WriteHeader(http.StatusOK)
}
