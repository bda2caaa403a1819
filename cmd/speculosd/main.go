package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/danmuck/ledgerctl/internal/config"
	"github.com/danmuck/ledgerctl/internal/observability"
	"github.com/danmuck/ledgerctl/internal/simulator"
)

func main() {
	cfgPath := flag.String("config", "", "path to a TOML config file")
	addr := flag.String("addr", "", "device listen address (overrides config)")
	adminAddr := flag.String("admin", "", "admin HTTP listen address (overrides config)")
	flag.Parse()

	log := observability.InitLogger("speculosd")

	cfg, err := config.LoadSimulatorConfig(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "speculosd: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *adminAddr != "" {
		cfg.AdminAddr = *adminAddr
	}

	sim := simulator.New(cfg.Profile)
	if err := sim.Listen(cfg.Addr); err != nil {
		fmt.Fprintf(os.Stderr, "speculosd: %v\n", err)
		os.Exit(1)
	}
	defer sim.Close()

	log.Info().
		Str("addr", cfg.Addr).
		Str("admin", cfg.AdminAddr).
		Str("app", cfg.Profile.AppName).
		Msg("serving device profile")

	router := simulator.NewAdminRouter(sim)
	if err := router.Run(cfg.AdminAddr); err != nil {
		fmt.Fprintf(os.Stderr, "speculosd: %v\n", err)
		os.Exit(1)
	}
}
