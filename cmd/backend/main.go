package main

import (
	"log"

	"garage-backend/internal/api"
)

// @title Garage Management API
// @version 1.0
// @description REST API управления гаражом: клиенты, автомобили, запчасти, ремонтные операции, квитанции, записи на приём

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	log.Println("App start")
	api.StartServer()
	log.Println("App terminated")
}
