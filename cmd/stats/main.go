package main

import (
	stdLog "log"
	"os"

	"github.com/Astemirdum/lending-service/stats/app"
	"github.com/Astemirdum/lending-service/stats/config"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLog.Fatal("load envs from .env ", err)
	}
	if err := app.Run(config.NewConfig()); err != nil {
		stdLog.Fatal(err)
	}
}
