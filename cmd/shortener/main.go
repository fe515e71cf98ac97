package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/samber/do"
	"github.com/serroba/linkledger/internal/console"
	"github.com/serroba/linkledger/internal/container"
	"github.com/serroba/linkledger/internal/messaging"
	"github.com/serroba/linkledger/internal/shortener"
	"go.uber.org/zap"
)

func main() {
	cli := humacli.New(func(hooks humacli.Hooks, options *container.Options) {
		injector := do.New()
		container.Register(injector, options)

		logger := do.MustInvoke[*zap.Logger](injector)

		hooks.OnStart(func() {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if options.EventFeed {
				group := do.MustInvoke[*messaging.ConsumerGroup](injector)
				if err := group.Start(ctx); err != nil {
					logger.Fatal("failed to start event feed", zap.Error(err))
				}
			}

			svc := do.MustInvoke[*shortener.Service](injector)

			logger.Info("console ready", zap.Int("slugLength", options.SlugLength))

			if err := console.New(svc, logger.Named("console")).Run(ctx, os.Stdin, os.Stdout); err != nil &&
				!errors.Is(err, context.Canceled) {
				logger.Error("console stopped", zap.Error(err))
			}

			if err := injector.Shutdown(); err != nil {
				logger.Error("service shutdown error", zap.Error(err))
			}

			_ = logger.Sync()
		})
	})

	cli.Run()
}
