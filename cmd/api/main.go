package main

import (
	"github.com/joho/godotenv"

	"github.com/diveshopfinder/api/internal/config"
	"github.com/diveshopfinder/api/internal/server"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	app := server.New(cfg)
	if err := app.Run(); err != nil {
		cfg.ServerLog.Fatalf("サーバー起動に失敗: %v", err)
	}
}
