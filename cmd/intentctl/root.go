package main

import (
	"context"

	"github.com/spf13/cobra"

	"intent-chatbot/internal/intent"
	intentRepo "intent-chatbot/internal/intent/repository/file"
	"intent-chatbot/internal/intent/usecase"
	"intent-chatbot/pkg/log"
	"intent-chatbot/pkg/randsrc"
)

type rootOptions struct {
	threshold float64
	fallback  string
	seed      uint64
	verbose   bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "intentctl",
		Short: "Offline tools for intent catalogs",
		Long: `intentctl loads an intent catalog (JSON or YAML), trains the same
Naive Bayes model the server uses, and lets you inspect it from the terminal.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().Float64Var(&opts.threshold, "threshold", intent.DefaultConfidenceThreshold, "minimum confidence before falling back")
	rootCmd.PersistentFlags().StringVar(&opts.fallback, "fallback", intent.DefaultFallbackResponse, "fallback response")
	rootCmd.PersistentFlags().Uint64Var(&opts.seed, "seed", 0, "random seed for response selection (0 seeds from the clock)")
	rootCmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "log loading and training details")

	rootCmd.AddCommand(
		newValidateCmd(opts),
		newAskCmd(opts),
		newClassifyCmd(opts),
		newEvalCmd(opts),
	)

	return rootCmd
}

func (o *rootOptions) logger() log.Logger {
	if !o.verbose {
		return log.NewNop()
	}
	return log.Init(log.ZapConfig{Level: "debug", Mode: "debug", Encoding: "console"})
}

func (o *rootOptions) loadCatalog(ctx context.Context, path string) (intent.Catalog, error) {
	return intentRepo.New(path, o.logger()).LoadCatalog(ctx)
}

func (o *rootOptions) train(ctx context.Context, catalog intent.Catalog) (intent.UseCase, error) {
	return usecase.New(o.logger(), catalog, usecase.Config{
		ConfidenceThreshold: o.threshold,
		FallbackResponse:    o.fallback,
		Random:              randsrc.New(o.seed),
	})
}

func (o *rootOptions) load(ctx context.Context, path string) (intent.Catalog, intent.UseCase, error) {
	catalog, err := o.loadCatalog(ctx, path)
	if err != nil {
		return intent.Catalog{}, nil, err
	}
	uc, err := o.train(ctx, catalog)
	if err != nil {
		return intent.Catalog{}, nil, err
	}
	return catalog, uc, nil
}
