package main

import (
	stdLog "log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/eslib/lending-service/app"
	"github.com/eslib/lending-service/config"
)

// @title           Lending Service API
// @version         1.0
// @description     Component lending ledger for the electronics lab library.
// @BasePath        /api/v1

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Print("load envs from .env ", zap.Error(err))
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)

	if err := app.Run(&cfg); err != nil {
		stdLog.Fatal("app run ", err)
	}
}
