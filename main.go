package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"triarb/pkg/arb"
	"triarb/pkg/config"
	"triarb/pkg/exchangeinfo"
	"triarb/pkg/feed"
	"triarb/pkg/parse"
	"triarb/pkg/pipeline"
	"triarb/pkg/pricepath"
	"triarb/pkg/quote"
)

func main() {
	configPath := flag.String("c", "arb.toml", "Path to configuration file")
	parserVariant := flag.String("parser", "json", "Parser variant: json or scan")
	live := flag.Bool("live", false, "Fetch exchange metadata live instead of from the configured fixture")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := run(*configPath, *parserVariant, *live, logger); err != nil {
		logger.Error("triarb: fatal", "err", err)
		os.Exit(1)
	}
}

func run(configPath, parserVariant string, live bool, logger *slog.Logger) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	symbols, err := loadSymbols(cfg, live)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	paths := pricepath.Build(cfg.HomeAsset, symbols, cfg.Targets, logger)
	if len(paths) == 0 {
		return fmt.Errorf("run: no triangular paths found for home asset %q", cfg.HomeAsset)
	}
	logger.Info("triarb: universe ready", "paths", len(paths))

	evaluator, err := buildEvaluator(cfg, paths)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	parser, err := parse.New(parserVariant)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	loop := pipeline.NewLoop(evaluator, 256, func(opp arb.Opportunity) {
		logger.Info("triarb: arbitrage opportunity",
			"path", opp.Path.String(),
			"final_amount", opp.FinalAmount,
			"trigger", opp.TriggerSymbol,
		)
	}, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	feedSymbols := universeSymbols(paths)
	ingest := func(ctx context.Context) error {
		return feed.Run(ctx, feedSymbols, parser, func(u parse.Update) {
			_ = loop.Submit(ctx, u)
		}, logger)
	}

	return pipeline.RunWithFeed(ctx, loop, ingest)
}

func loadSymbols(cfg *config.Config, live bool) ([]pricepath.SymbolInfo, error) {
	if live {
		return exchangeinfo.FetchLive()
	}
	path := cfg.ExchangeInfoPath
	if path == "" {
		path = "fixtures/exchangeInfoSpot.json"
	}
	return exchangeinfo.LoadFixture(path)
}

func buildEvaluator(cfg *config.Config, paths []*pricepath.Path) (arb.Evaluator, error) {
	store := quote.NewStore()
	switch cfg.Evaluator {
	case config.EvaluatorNaive:
		return arb.NewNaiveEvaluator(paths, store), nil
	case config.EvaluatorEdge:
		return arb.NewEdgeEvaluator(paths, store), nil
	case config.EvaluatorRayon:
		if cfg.RayonScan.OnUpdateReturn == config.OnUpdateFirst {
			return arb.NewParallelFirstEvaluator(paths, store, cfg.RayonScan.Workers), nil
		}
		return arb.NewParallelBestEvaluator(paths, store, cfg.RayonScan.Workers), nil
	default:
		return nil, fmt.Errorf("buildEvaluator: unrecognized evaluator %q", cfg.Evaluator)
	}
}

func universeSymbols(paths []*pricepath.Path) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range paths {
		for _, s := range p.Symbols() {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}
