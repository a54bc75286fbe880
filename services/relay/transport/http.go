package transport

import (
	"wax/pkg/middleware"
	"wax/pkg/redis"
	"wax/services/relay/handler"

	"github.com/labstack/echo/v4"
)

func NewRouter(socketHandler *handler.SocketHandler, redisClient *redis.RedisClient) *echo.Echo {
	e := echo.New()

	e.Use(middleware.SessionMiddleware(redisClient))

	e.GET("/ws", socketHandler.HandleRelaySocket)

	return e
}
