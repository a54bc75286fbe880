package main

import (
	"fmt"
	"log"
	"net/http"

	"wax/pkg/logger"
	"wax/pkg/storage"
	"wax/services/media/handler"
	"wax/services/media/service"
	"wax/services/media/transport"
)

const webPort = 80

func main() {
	if err := logger.InitLogger(logger.ServiceTypeMedia); err != nil {
		log.Panic("RabbitMQ 연결 실패: ", err)
	}

	objectStorage, err := storage.NewObjectStorage()
	if err != nil {
		log.Panic("오브젝트 스토리지 연결 실패: ", err)
	}

	mediaService := service.NewMediaService(objectStorage)
	mediaHandler := handler.NewMediaHandler(mediaService)

	router := transport.NewRouter(mediaHandler)

	log.Printf("🚀 Media Service Started on Port %d", webPort)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", webPort), router))
}
