package main

import (
	"fmt"
	"log"
	"net/http"

	"wax/pkg/db"
	"wax/pkg/logger"
	"wax/pkg/redis"
	"wax/services/lobby/event"
	"wax/services/lobby/handler"
	"wax/services/lobby/repository"
	"wax/services/lobby/service"
	"wax/services/lobby/transport"
)

const webPort = 80

func main() {
	if err := logger.InitLogger(logger.ServiceTypeLobby); err != nil {
		log.Panic("RabbitMQ 연결 실패: ", err)
	}

	mongoClient, err := db.ConnectMongo()
	if err != nil {
		log.Panic("MongoDB 연결 실패: ", err)
	}

	redisClient, err := redis.NewRedisClient()
	if err != nil {
		log.Panic("Redis 연결 실패: ", err)
	}

	// 의존성 주입 (DI)
	presenceRepo, err := repository.NewPresenceRepository(mongoClient)
	if err != nil {
		log.Panic("Failed to create PresenceRepository: ", err)
	}

	takeoverRepo, err := repository.NewTakeoverRepository(mongoClient)
	if err != nil {
		log.Panic("Failed to create TakeoverRepository: ", err)
	}

	emitter := event.NewEmitter(redisClient)

	presenceService := service.NewPresenceService(presenceRepo, emitter, redisClient)
	presenceHandler := handler.NewPresenceHandler(presenceService)

	takeoverService := service.NewTakeoverService(takeoverRepo, presenceRepo, emitter)
	takeoverHandler := handler.NewTakeoverHandler(takeoverService)

	router := transport.NewRouter(presenceHandler, takeoverHandler)

	log.Printf("🚀 Lobby Service Started on Port %d", webPort)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", webPort), router))
}
