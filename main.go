package main

import (
	"io"
	"os"

	"github.com/budgetlens/backend/internal/config"
	v1 "github.com/budgetlens/backend/internal/controllers/v1"
	"github.com/budgetlens/backend/internal/ledger"
	"github.com/budgetlens/backend/internal/models"
	"github.com/budgetlens/backend/internal/news"
	"github.com/budgetlens/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	cfg := config.Load()

	db, err := models.Connect(cfg.DBDSN)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	co := v1.Controller{
		Ledger: ledger.New(db),
		News:   news.NewService(cfg.NewsAPIKey, cfg.OpenAIAPIKey),
	}

	r, err := router.Config(cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	router.AttachRoutes(cfg, co, r.Group("/"))

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
