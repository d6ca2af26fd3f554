package main

import (
	stdLog "log"
	"time"

	"github.com/Astemirdum/hotel-service/hotel/app"
	"github.com/Astemirdum/hotel-service/hotel/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("no .env file ", err)
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)

	if err := app.Run(cfg); err != nil {
		stdLog.Fatal("app run ", err)
	}
}
