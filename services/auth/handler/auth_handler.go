package handler

import (
	"net/http"

	"wax/pkg/types/commontype"
	"wax/services/auth/service"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type loginRequest struct {
	AccessToken string `json:"accessToken"`
}

// 카카오 로그인
func (h *AuthHandler) KakaoLogin(c echo.Context) error {
	return h.login(c, commontype.SnsTypeKakao)
}

// 네이버 로그인
func (h *AuthHandler) NaverLogin(c echo.Context) error {
	return h.login(c, commontype.SnsTypeNaver)
}

func (h *AuthHandler) login(c echo.Context, snsType int) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "Invalid request")
	}
	if req.AccessToken == "" {
		return c.String(http.StatusBadRequest, "Access token is required")
	}

	sessionID, user, err := h.authService.Login(snsType, req.AccessToken)
	if err != nil {
		return c.String(http.StatusUnauthorized, "Login failed")
	}

	cookie := &http.Cookie{
		Name:     "session_id",
		Value:    sessionID,
		HttpOnly: true,
		Secure:   true,
		Path:     "/",
	}
	c.SetCookie(cookie)

	return c.JSON(http.StatusOK, user)
}

// 로그아웃
func (h *AuthHandler) Logout(c echo.Context) error {
	cookie, err := c.Cookie("session_id")
	if err != nil {
		return c.String(http.StatusBadRequest, "No session cookie")
	}

	if err := h.authService.Logout(cookie.Value); err != nil {
		return c.String(http.StatusInternalServerError, "Failed to logout")
	}

	expired := &http.Cookie{
		Name:     "session_id",
		Value:    "",
		HttpOnly: true,
		Secure:   true,
		Path:     "/",
		MaxAge:   -1,
	}
	c.SetCookie(expired)

	return c.String(http.StatusOK, "Logged out")
}
