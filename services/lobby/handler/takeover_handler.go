package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"wax/pkg/dto"
	"wax/pkg/types/commontype"
	"wax/services/lobby/service"
)

type TakeoverHandler struct {
	takeoverService *service.TakeoverService
}

func NewTakeoverHandler(takeoverService *service.TakeoverService) *TakeoverHandler {
	return &TakeoverHandler{takeoverService: takeoverService}
}

// 테이크오버 요청 생성
func (h *TakeoverHandler) RequestTakeover(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromHeader(w, r)
	if !ok {
		return
	}

	var req dto.TakeoverRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	requester := commontype.DJProfile{
		ID:   userID,
		Name: r.Header.Get("X-User-Name"),
	}

	state, err := h.takeoverService.Request(requester, req.TargetID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(state)
}

// 테이크오버 승인 (대상 DJ만 가능)
func (h *TakeoverHandler) ApproveTakeover(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromHeader(w, r)
	if !ok {
		return
	}

	grant, err := h.takeoverService.Approve(userID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "Takeover request not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(grant)
}

// 테이크오버 거절 (대상 DJ만 가능)
func (h *TakeoverHandler) DeclineTakeover(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromHeader(w, r)
	if !ok {
		return
	}

	if err := h.takeoverService.Decline(userID); err != nil {
		http.Error(w, "Takeover request not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// 테이크오버 철회 (요청자만 가능)
func (h *TakeoverHandler) CancelTakeover(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromHeader(w, r)
	if !ok {
		return
	}

	if err := h.takeoverService.Cancel(userID); err != nil {
		http.Error(w, "Takeover request not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// 받은 요청 상태 조회
func (h *TakeoverHandler) GetInboundRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromHeader(w, r)
	if !ok {
		return
	}

	state, err := h.takeoverService.Inbound(userID)
	if err != nil {
		http.Error(w, "Failed to get takeover request", http.StatusInternalServerError)
		return
	}
	if state == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(state)
}

// 보낸 요청 상태 조회
func (h *TakeoverHandler) GetOutboundRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromHeader(w, r)
	if !ok {
		return
	}

	state, err := h.takeoverService.Outbound(userID)
	if err != nil {
		http.Error(w, "Failed to get takeover request", http.StatusInternalServerError)
		return
	}
	if state == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(state)
}

// 만료 요청 수동 스윕
func (h *TakeoverHandler) SweepTakeovers(w http.ResponseWriter, r *http.Request) {
	expired, err := h.takeoverService.Sweep()
	if err != nil {
		http.Error(w, "Failed to sweep takeover requests", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int64{"expired": expired})
}
