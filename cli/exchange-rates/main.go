package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"github.com/openfx/exchange-rates/cli/cmd"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := cmd.Execute(&cmd.Config{Ctx: ctx, Logger: logger}); err != nil {
		logger.WithError(err).Fatal("command failed")
	}
}
