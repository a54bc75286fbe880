package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"wax/pkg/dto"
	"wax/services/lobby/service"
)

type PresenceHandler struct {
	presenceService *service.PresenceService
}

func NewPresenceHandler(presenceService *service.PresenceService) *PresenceHandler {
	return &PresenceHandler{
		presenceService: presenceService,
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

// 로비 입장
func (h *PresenceHandler) JoinLobby(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromHeader(w, r)
	if !ok {
		return
	}

	var req dto.JoinLobbyDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := h.presenceService.Join(userID, req); err != nil {
		http.Error(w, "Failed to join lobby", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// 하트비트
func (h *PresenceHandler) Heartbeat(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromHeader(w, r)
	if !ok {
		return
	}

	var req dto.HeartbeatDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := h.presenceService.Heartbeat(userID, req.Ready); err != nil {
		http.Error(w, "Failed to refresh presence", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// 로비 퇴장
func (h *PresenceHandler) LeaveLobby(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromHeader(w, r)
	if !ok {
		return
	}

	if err := h.presenceService.Leave(userID); err != nil {
		http.Error(w, "Failed to leave lobby", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// 온라인 DJ 목록 조회
func (h *PresenceHandler) ListOnlineDJs(w http.ResponseWriter, r *http.Request) {
	djs, err := h.presenceService.ListOnline()
	if err != nil {
		http.Error(w, "Failed to retrieve online djs", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(djs)
}

// 스테일 프레즌스 수동 스윕
func (h *PresenceHandler) SweepPresence(w http.ResponseWriter, r *http.Request) {
	removed, err := h.presenceService.Sweep()
	if err != nil {
		http.Error(w, "Failed to sweep presence", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int64{"removed": removed})
}

// 방송 시작 알림
func (h *PresenceHandler) StartStream(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromHeader(w, r)
	if !ok {
		return
	}

	var req struct {
		DJName string `json:"dj_name"`
		Title  string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := h.presenceService.StartStream(userID, req.DJName, req.Title); err != nil {
		http.Error(w, "Failed to start stream", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// 방송 종료 알림
func (h *PresenceHandler) StopStream(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromHeader(w, r)
	if !ok {
		return
	}

	if err := h.presenceService.StopStream(userID); err != nil {
		http.Error(w, "Failed to stop stream", http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusOK)
}
