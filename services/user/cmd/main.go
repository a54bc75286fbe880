package main

import (
	"fmt"
	"log"
	"net/http"

	"wax/pkg/db"
	"wax/pkg/logger"
	"wax/services/user/handler"
	"wax/services/user/repository"
	"wax/services/user/service"
	"wax/services/user/transport"
)

const webPort = 80

func main() {
	if err := logger.InitLogger(logger.ServiceTypeUser); err != nil {
		log.Panic("RabbitMQ 연결 실패: ", err)
	}

	gormDB, err := db.ConnectMySQL()
	if err != nil {
		log.Panic("MySQL 연결 실패: ", err)
	}

	// 의존성 주입 (DI)
	userRepo, err := repository.NewUserRepository(gormDB)
	if err != nil {
		log.Panic("Failed to create UserRepository: ", err)
	}

	roleRepo := repository.NewRoleRequestRepository(gormDB)

	userService := service.NewUserService(userRepo)
	userHandler := handler.NewUserHandler(userService)

	roleService := service.NewRoleService(roleRepo, userRepo)
	roleHandler := handler.NewRoleHandler(roleService)

	router := transport.NewRouter(userHandler, roleHandler)

	log.Printf("🚀 User Service Started on Port %d", webPort)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", webPort), router))
}
