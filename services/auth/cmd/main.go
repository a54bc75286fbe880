package main

import (
	"fmt"
	"log"

	"wax/pkg/logger"
	"wax/pkg/redis"
	"wax/services/auth/client"
	"wax/services/auth/handler"
	"wax/services/auth/provider"
	"wax/services/auth/service"
	"wax/services/auth/transport"
)

const webPort = 80

func main() {
	if err := logger.InitLogger(logger.ServiceTypeAuth); err != nil {
		log.Panic("RabbitMQ 연결 실패: ", err)
	}

	redisClient, err := redis.NewRedisClient()
	if err != nil {
		log.Panic("Redis 연결 실패: ", err)
	}

	// 의존성 주입 (DI)
	userClient := client.NewUserClient()

	authService := service.NewAuthService(
		userClient,
		redisClient,
		provider.NewKakaoVerifier(),
		provider.NewNaverVerifier(),
	)
	authHandler := handler.NewAuthHandler(authService)

	router := transport.NewRouter(authHandler)

	log.Printf("🚀 Auth Service Started on Port %d", webPort)
	log.Fatal(router.Start(fmt.Sprintf(":%d", webPort)))
}
