package main

import (
	"fmt"
	"log"
	"net/http"

	"wax/pkg/db"
	"wax/pkg/logger"
	"wax/services/store/event"
	"wax/services/store/handler"
	"wax/services/store/repository"
	"wax/services/store/service"
	"wax/services/store/transport"
)

const webPort = 80

func main() {
	if err := logger.InitLogger(logger.ServiceTypeStore); err != nil {
		log.Panic("RabbitMQ 연결 실패: ", err)
	}

	mongoClient, err := db.ConnectMongo()
	if err != nil {
		log.Panic("MongoDB 연결 실패: ", err)
	}

	// 의존성 주입 (DI)
	giftCardRepo, err := repository.NewGiftCardRepository(mongoClient)
	if err != nil {
		log.Panic("Failed to create GiftCardRepository: ", err)
	}

	orderRepo, err := repository.NewOrderRepository(mongoClient)
	if err != nil {
		log.Panic("Failed to create OrderRepository: ", err)
	}

	productRepo := repository.NewProductRepository(mongoClient)
	vinylRepo := repository.NewVinylRepository(mongoClient)

	emitter, err := event.NewEmitter(logger.RabbitMQ)
	if err != nil {
		log.Panic("Failed to create store emitter: ", err)
	}

	giftCardService := service.NewGiftCardService(giftCardRepo, emitter)
	giftCardHandler := handler.NewGiftCardHandler(giftCardService)

	catalogService := service.NewCatalogService(productRepo, vinylRepo)
	catalogHandler := handler.NewCatalogHandler(catalogService)

	orderService := service.NewOrderService(orderRepo, catalogService, emitter)
	orderHandler := handler.NewOrderHandler(orderService)

	router := transport.NewRouter(giftCardHandler, catalogHandler, orderHandler)

	log.Printf("🚀 Store Service Started on Port %d", webPort)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", webPort), router))
}
