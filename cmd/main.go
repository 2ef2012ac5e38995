package main

import (
	"os"

	"backend/config"
	"backend/routes"
	"backend/utils"

	"github.com/rs/zerolog/log"
)

func main() {
	config.InitLogger()
	config.InitDB()
	config.SeedAdmin()
	utils.InitS3()

	addr := ":8080"
	if p := os.Getenv("PORT"); p != "" {
		addr = ":" + p
	}

	r := routes.SetupRouter()
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
