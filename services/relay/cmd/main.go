package main

import (
	"fmt"
	"log"

	"wax/pkg/logger"
	"wax/pkg/redis"
	"wax/services/relay/handler"
	"wax/services/relay/service"
	"wax/services/relay/transport"
)

const webPort = 80

func main() {
	if err := logger.InitLogger(logger.ServiceTypeRelay); err != nil {
		log.Panic("RabbitMQ 연결 실패: ", err)
	}

	redisClient, err := redis.NewRedisClient()
	if err != nil {
		log.Panic("Redis 연결 실패: ", err)
	}

	relayService := service.NewRelayService(redisClient)
	relayService.Start()

	socketHandler := handler.NewSocketHandler(relayService)

	router := transport.NewRouter(socketHandler, redisClient)

	log.Printf("🚀 Relay Service Started on Port %d", webPort)
	log.Fatal(router.Start(fmt.Sprintf(":%d", webPort)))
}
