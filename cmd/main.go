// Package main is the entry point for the quote-service application.
//
// @title           Shipping Quote API
// @version         1.0.0
// @description     API for generating shipping quotes for timber orders.
//
//	Orders are expanded into boards, packed into carrier-compliant parcels and
//	priced against live courier rates or the static girth/weight band ladder.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/pinecut/quote-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Quotes
// @tag.description Shipping quote operations
//
// @tag.name        Pricing Bands
// @tag.description Static price ladder configuration
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/pinecut/quote-service/docs" // swagger docs

	"github.com/rs/zerolog/log"

	"github.com/pinecut/quote-service/config"
	"github.com/pinecut/quote-service/internal/app"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
