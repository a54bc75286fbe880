package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"wax/pkg/dto"
	"wax/services/store/service"

	"github.com/go-chi/chi/v5"
)

type GiftCardHandler struct {
	giftCardService *service.GiftCardService
}

func NewGiftCardHandler(giftCardService *service.GiftCardService) *GiftCardHandler {
	return &GiftCardHandler{
		giftCardService: giftCardService,
	}
}

// X-User-ID 헤더에서 유저 ID 추출
func userIDFromHeader(w http.ResponseWriter, r *http.Request) (int, bool) {
	xUserID := r.Header.Get("X-User-ID")
	if xUserID == "" {
		http.Error(w, "User ID is required", http.StatusUnauthorized)
		return 0, false
	}

	userID, err := strconv.Atoi(xUserID)
	if err != nil {
		http.Error(w, fmt.Sprintf("User ID is not number, xUserID: %s", xUserID), http.StatusUnauthorized)
		return 0, false
	}

	return userID, true
}

// 기프트 카드 발급
func (h *GiftCardHandler) CreateGiftCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromHeader(w, r)
	if !ok {
		return
	}

	var req dto.CreateGiftCardDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	card, err := h.giftCardService.Create(userID, req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(card)
}

// 잔액 조회
func (h *GiftCardHandler) CheckGiftCard(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		http.Error(w, "Gift card code is required", http.StatusBadRequest)
		return
	}

	balance, err := h.giftCardService.Check(code)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "Gift card not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to check gift card", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(balance)
}

// 잔액 사용
func (h *GiftCardHandler) RedeemGiftCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromHeader(w, r)
	if !ok {
		return
	}

	var req dto.RedeemGiftCardDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	balance, err := h.giftCardService.Redeem(userID, req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "Gift card not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(balance)
}
