package main

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/logger"
	"github.com/ZeldaFan0225/Ratchet-Chat-sub002/internal/relay"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("ratchet-chat-devrelay")

	addr := os.Getenv("DEVRELAY_ADDRESS")
	if addr == "" {
		addr = "localhost:8080"
	}

	signKey := []byte(os.Getenv("DEVRELAY_TOKEN_SIGN_KEY"))
	if len(signKey) == 0 {
		signKey = make([]byte, 32)
		if _, err := rand.Read(signKey); err != nil {
			log.Fatal().Err(err).Msg("generate token sign key")
		}
		log.Warn().Msg("DEVRELAY_TOKEN_SIGN_KEY not set, tokens will not survive a restart")
	}

	rl := relay.New(signKey, log)
	server := &http.Server{
		Addr:    addr,
		Handler: rl.Routes(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("address", addr).Msg("dev relay listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("dev relay serve")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("dev relay shutdown")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
