package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/glowmart/storefront/config"
	"github.com/glowmart/storefront/internal/app"
	"github.com/glowmart/storefront/pkg/sigctx"
)

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()
	cfg.Print()

	storefront, err := app.New(sigCtx, cfg)
	if err != nil {
		fmt.Printf("failed to start: %v\n", err)
		os.Exit(1)
	}

	storefront.Run(sigCtx)
	slog.Info("storefront is running")

	<-sigCtx.Done()
	slog.Info("storefront is closing...")

	storefront.Close()
	slog.Info("storefront is closed")
}
