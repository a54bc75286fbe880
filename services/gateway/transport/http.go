package transport

import (
	"wax/pkg/middleware"
	"wax/pkg/redis"
	"wax/services/gateway/handler"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func NewRouter(redisClient *redis.RedisClient, proxyHandler *handler.ProxyHandler) *echo.Echo {
	e := echo.New()

	// CORS 설정
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{"https://*", "http://*"},
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.PATCH, echo.DELETE, echo.OPTIONS},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposeHeaders:    []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// 세션 검사 후 내부 서비스로 중계
	e.Use(middleware.SessionMiddleware(redisClient))
	e.Any("/*", proxyHandler.Proxy)

	return e
}
