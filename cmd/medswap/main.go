package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"medswap/internal/config"
	"medswap/internal/db"
	"medswap/internal/logger"
	"medswap/internal/match"
	"medswap/internal/registry"
	"medswap/repository"
)

func main() {
	app := &cli.App{
		Name:  "medswap",
		Usage: "Match surplus medicine donors with recipients in need",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "db",
				Usage: "SQLite DSN for the session allocation ledger (overrides DB_PATH)",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Println("Error: ", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if p := c.String("db"); p != "" {
		cfg.Database.Path = p
	}
	log := logger.Setup(cfg.Log)
	log.Info("configuration loaded", "config", cfg.String())

	d, err := db.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open ledger db: %w", err)
	}
	defer func() {
		if err := d.Close(); err != nil {
			log.Warn("close ledger db", "err", err)
		}
	}()

	reg := registry.New()
	ledger := repository.NewAllocationRepository(d)

	sh := &shell{
		reg:     reg,
		matcher: match.New(reg, ledger),
		ledger:  ledger,
		in:      bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		log:     log,
	}
	return sh.run(c.Context)
}
