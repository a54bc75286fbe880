package main

import (
	"log"
	"os"

	"wax/pkg/logger"
	"wax/pkg/mq"
	"wax/services/notify/event"
	"wax/services/notify/mailer"
)

func main() {
	if err := logger.InitLogger(logger.ServiceTypeNotify); err != nil {
		log.Println("RabbitMQ 연결 실패: ", err)
		os.Exit(1)
	}

	rabbit, err := mq.ConnectToRabbitMQ()
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
	defer rabbit.Conn.Close()

	log.Printf("🚀 Notify Service Started")

	consumer, err := event.NewConsumer(rabbit, mailer.NewPostmarkMailer())
	if err != nil {
		log.Printf("Failed to make consumer: %v", err)
		os.Exit(1)
	}

	if err := consumer.Listen(); err != nil {
		log.Println(err)
	}
}
