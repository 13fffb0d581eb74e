package main

import (
	"log"
	"os"

	"github.com/Apple-More/order-service/cmd/order-service/app"
	"github.com/Apple-More/order-service/configs"
	"github.com/Apple-More/order-service/internal/adapter/http"
)

func main() {
	env := os.Getenv("APP_ENV") // dev | staging | prod
	if env == "" {
		env = "dev"
	}

	cfg, err := configs.Load("configs", env)
	if err != nil {
		log.Fatal(err)
	}

	app, cleanup, err := app.InitWithConfig(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	srv := http.NewServer(cfg, app.Router)
	log.Printf("order-service (%s) listening on %s", env, cfg.App.HTTPAddr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
