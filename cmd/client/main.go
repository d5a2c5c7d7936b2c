package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ItemGate/internal/cli/commands"
	"ItemGate/internal/config"

	"go.uber.org/zap"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	// Load unified config (env + flags)
	cfg := config.NewConfig()

	if cfg.Version {
		printVersion()
		return
	}

	// терминальный интерфейс занимает stdout, поэтому диагностика идёт в файл
	logger, err := newClientLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "client log: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	commands.SetLogger(logger.Sugar())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// dispatcher
	exitCode := commands.Dispatch(ctx, cfg, flag.Args())
	if exitCode == 0 {
		return
	}
	_ = logger.Sync()
	os.Exit(exitCode)
}

func newClientLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.ClientLogFile == "" {
		return zap.NewNop(), nil
	}
	zc := zap.NewProductionConfig()
	if cfg.Debug {
		zc = zap.NewDevelopmentConfig()
	}
	zc.OutputPaths = []string{cfg.ClientLogFile}
	zc.ErrorOutputPaths = []string{cfg.ClientLogFile}
	return zc.Build()
}

func printVersion() {
	fmt.Printf("ItemGate client\nVersion: %s\nBuild date: %s\n", version, buildDate)
}
