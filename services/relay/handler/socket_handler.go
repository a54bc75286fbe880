package handler

import (
	"log"
	"net/http"
	"strconv"

	"wax/services/relay/service"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

type SocketHandler struct {
	relayService *service.RelayService
}

func NewSocketHandler(relayService *service.RelayService) *SocketHandler {
	return &SocketHandler{relayService: relayService}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (h *SocketHandler) HandleRelaySocket(c echo.Context) error {
	xUserID := c.Request().Header.Get("X-User-ID")
	userID, err := strconv.Atoi(xUserID)
	if err != nil {
		log.Printf("User ID is not a number: %s", xUserID)
		return echo.NewHTTPError(http.StatusUnauthorized, "User ID is not a number")
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "WebSocket upgrade failed")
	}
	defer conn.Close()

	if err := h.relayService.RegisterClient(userID, conn); err != nil {
		log.Printf("Failed to register user %d to relay: %v", userID, err)
		return echo.NewHTTPError(http.StatusConflict, "Already connected")
	}
	defer h.relayService.UnregisterClient(userID)

	// 클라이언트 수신 루프. 이벤트는 Redis 구독 쪽에서만 내려보내므로
	// 여기서는 커넥션 종료 감지만 한다.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			log.Printf("User %d relay connection closed: %v", userID, err)
			return nil
		}
	}
}
