package main

import (
	"fmt"
	"log"

	"wax/pkg/logger"
	"wax/pkg/redis"
	"wax/services/gateway/handler"
	"wax/services/gateway/transport"
)

const webPort = 80

func main() {
	if err := logger.InitLogger(logger.ServiceTypeGateway); err != nil {
		log.Panic("RabbitMQ 연결 실패: ", err)
	}

	redisClient, err := redis.NewRedisClient()
	if err != nil {
		log.Panic("Redis 연결 실패: ", err)
	}

	proxyHandler := handler.NewProxyHandler()
	router := transport.NewRouter(redisClient, proxyHandler)

	log.Printf("🚀 Gateway Service Started on Port %d", webPort)
	log.Fatal(router.Start(fmt.Sprintf(":%d", webPort)))
}
