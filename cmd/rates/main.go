package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"service-rates/internal/clients/nbu"
	"service-rates/internal/clients/privatbank"
	"service-rates/internal/logger"
	"service-rates/internal/render"
	ratessvc "service-rates/internal/service/rates"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context) error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("не удалось загрузить конфиг: %w", err)
	}

	logg := logger.Init(cfg.LogLevel)

	card := privatbank.New(cfg.Timeout)
	official := nbu.New(cfg.Timeout)

	service := ratessvc.New(card, official, cfg.Policy, logg)
	records := service.Collect(ctx)
	render.Table(os.Stdout, records)

	return nil
}
