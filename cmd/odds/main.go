package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	oddscmd "github.com/louisbranch/odds/internal/cmd/odds"
	"github.com/louisbranch/odds/internal/platform/config"
)

func main() {
	cfg, err := oddscmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[ODDS] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = oddscmd.Run(ctx, cfg, os.Stdout)
	if errors.Is(err, oddscmd.ErrUsage) {
		config.Usagef(os.Stderr, flag.Usage, "%v", err)
	}
	if err != nil {
		config.Exitf("%s", oddscmd.FormatError(cfg.Locale, err))
	}
}
