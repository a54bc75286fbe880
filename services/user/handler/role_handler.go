package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"wax/pkg/dto"
	"wax/services/user/service"

	"github.com/go-chi/chi/v5"
)

type RoleHandler struct {
	roleService *service.RoleService
}

func NewRoleHandler(roleService *service.RoleService) *RoleHandler {
	return &RoleHandler{
		roleService: roleService,
	}
}

// DJ 권한 신청
func (h *RoleHandler) SubmitRoleRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromHeader(w, r)
	if !ok {
		return
	}

	var req dto.RoleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	request, err := h.roleService.Submit(userID, req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(request)
}

// 내 대기 중인 신청 조회
func (h *RoleHandler) GetMyRoleRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromHeader(w, r)
	if !ok {
		return
	}

	request, err := h.roleService.MyPending(userID)
	if err != nil {
		http.Error(w, "Failed to retrieve role request", http.StatusInternalServerError)
		return
	}
	if request == nil {
		http.Error(w, "No pending role request", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(request)
}

// 대기 중인 신청 목록 (관리자)
func (h *RoleHandler) ListPendingRoleRequests(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromHeader(w, r)
	if !ok {
		return
	}

	requests, err := h.roleService.ListPending(userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(requests)
}

// 신청 검토 (관리자)
func (h *RoleHandler) ReviewRoleRequest(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromHeader(w, r)
	if !ok {
		return
	}

	requestID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid request ID", http.StatusBadRequest)
		return
	}

	var req dto.ReviewRoleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	request, err := h.roleService.Review(userID, requestID, req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "Role request not found", http.StatusNotFound)
			return
		}
		if strings.Contains(err.Error(), "admin") {
			http.Error(w, err.Error(), http.StatusForbidden)
			return
		}
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(request)
}
