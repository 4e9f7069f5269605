package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/DIMO-Network/server-garage/pkg/logging"
	"github.com/DIMO-Network/server-garage/pkg/runner"
	"github.com/line-relay/line-relay-api/internal/fakeline"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Runs a local Messaging API stand-in. Point LINE_API_ENDPOINT at it to try the relay without a channel.
func main() {
	logger := logging.GetAndSetDefaultLogger("fake-line-api")
	mainCtx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	port := flag.Int("port", 8081, "port to listen on")
	status := flag.Int("status", 200, "status code returned for every call")
	delay := flag.Duration("delay", 0, "delay before every response")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	api := fakeline.New(
		fakeline.WithStatus(*status),
		fakeline.WithDelay(*delay),
		fakeline.WithLogger(logger),
	)

	group, groupCtx := errgroup.WithContext(mainCtx)
	logger.Info().Str("port", strconv.Itoa(*port)).Dur("delay", *delay).Int("status", *status).Msg("Starting fake LINE API")
	runner.RunHandler(groupCtx, group, api, ":"+strconv.Itoa(*port))

	if err := group.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("Server failed.")
	}
	logger.Info().Msg("Server stopped.")
}
