package cmd

import (
	"context"
	"fmt"

	"aimlookup/config"
	"aimlookup/fetcher"
	"aimlookup/loader"
)

func newFetcher(cfg *config.Config) (*fetcher.Client, error) {
	client, err := fetcher.NewClient(fetcher.ClientConfig{
		RelayURL:  cfg.Relay.URL,
		UserAgent: cfg.Relay.UserAgent,
		Timeout:   cfg.Relay.Timeout,
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create fetcher: %w", err)
	}
	return client, nil
}

func sourcesFromConfig(cfg *config.Config) loader.Sources {
	return loader.Sources{
		Category: cfg.Sources.Category,
		Equity:   cfg.Sources.Equity,
		Detail:   cfg.Sources.Detail,
	}
}

func animatorConfig(cfg *config.Config) loader.AnimatorConfig {
	return loader.AnimatorConfig{
		Quotes:           cfg.Loader.Quotes,
		QuoteInterval:    cfg.Loader.QuoteInterval,
		ProgressInterval: cfg.Loader.ProgressInterval,
		ProgressStep:     cfg.Loader.ProgressStep,
	}
}

// runLoad runs one dataset load to completion for the terminal commands.
func runLoad[T any](ctx context.Context, name string, cfg *config.Config, load func(context.Context) (T, error)) (T, error) {
	task := loader.NewTask[T](name, loader.NewAnimator(animatorConfig(cfg)), logger)
	if err := task.Run(ctx, load); err != nil {
		var zero T
		return zero, err
	}
	value, _ := task.Value()
	return value, nil
}
