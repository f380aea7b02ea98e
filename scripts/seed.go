package main

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"showroom_manager/internal/config"
	"showroom_manager/internal/database"
	"showroom_manager/internal/logger"
	"showroom_manager/internal/migrations"
	"showroom_manager/internal/repository"
	"showroom_manager/internal/services"
)

// Seeds a development database with one delivery order of demo stock.
func main() {
	log := logger.Get()

	cfg := config.Load()

	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := migrations.RunMigrations(db, cfg.ResetDB); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	repos := repository.NewRepositories(db)
	txManager := repository.NewTxManager(db)
	deliveryOrderService := services.NewDeliveryOrderService(repos, txManager)

	date := time.Now().AddDate(0, 0, -7)
	order, err := deliveryOrderService.ReceiveOrder(services.ReceiveOrderRequest{
		DONumber:      "DO-2024-001",
		Date:          &date,
		DealerName:    "Atlas Honda Ltd",
		DealerAddress: "Sheikhupura Road, Lahore",
		Bikes: []services.ReceiveBikeInput{
			{Model: "CD70", Color: "Red", EngineNumber: "CD70E-100001", ChassisNumber: "CD70C-100001", PurchasePrice: decimal.NewFromInt(155000)},
			{Model: "CD70", Color: "Black", EngineNumber: "CD70E-100002", ChassisNumber: "CD70C-100002", PurchasePrice: decimal.NewFromInt(155000)},
			{Model: "CG 125", Color: "Red", EngineNumber: "CG125E-200001", ChassisNumber: "CG125C-200001", PurchasePrice: decimal.NewFromInt(230000)},
			{Model: "CB150F", Color: "Silver", EngineNumber: "CB150E-300001", ChassisNumber: "CB150C-300001", PurchasePrice: decimal.NewFromInt(485000)},
		},
	})
	if err != nil {
		log.Fatal("Failed to seed delivery order: ", err)
	}

	fmt.Printf("Seeded delivery order %s with %d bikes\n", order.DONumber, len(order.Bikes))
}
