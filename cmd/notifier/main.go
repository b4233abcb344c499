package main

import (
	"os"
	"os/signal"
	"syscall"

	"funfans/pkg/config"
	"funfans/pkg/logger"
	"funfans/pkg/queue"
)

// The notifier drains committed sale events and logs them. It stands in for
// the delivery channel (email, push) that would consume the same queue in
// production.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()
	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v", err)
		panic(err)
	}
	defer queueClient.Close()

	err = queueClient.ConsumeSaleEvents(func(event queue.SaleEvent) error {
		log.Info("Sale: %s earned %.2f credits from %s buying %q (%s)",
			event.CreatorID, event.AmountReceived, event.BuyerID, event.Title, event.ContentItemID)
		return nil
	})
	if err != nil {
		log.Error("Failed to start consumer: %v", err)
		panic(err)
	}

	log.Info("Sale notifier started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Sale notifier exited")
}
