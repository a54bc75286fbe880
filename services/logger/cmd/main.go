package main

import (
	"log"
	"os"

	"wax/pkg/db"
	"wax/pkg/mq"
	"wax/services/logger/event"
	"wax/services/logger/repository"
)

func main() {
	mongoClient, err := db.ConnectMongo()
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}

	rabbit, err := mq.ConnectToRabbitMQ()
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
	defer rabbit.Conn.Close()

	log.Printf("🚀 Logger Service Started")

	logRepo := repository.NewLogRepository(mongoClient)

	consumer, err := event.NewConsumer(rabbit, logRepo)
	if err != nil {
		log.Printf("Failed to make consumer: %v", err)
		os.Exit(1)
	}

	if err := consumer.Listen(); err != nil {
		log.Println(err)
	}
}
