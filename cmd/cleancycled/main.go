package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/cleancycle/cleancycle/config"
	"github.com/cleancycle/cleancycle/internal/app"
	"github.com/cleancycle/cleancycle/internal/repository"
	"github.com/cleancycle/cleancycle/internal/webapi"
	"github.com/cleancycle/cleancycle/internal/webserver"
)

var (
	cfile   = flag.String("c", "cleancycle.yml", "config file")
	initdb  = flag.Bool("initdb", false, "run migration and seeding, then exit")
	debug   = flag.Bool("x", false, "force debug mode")
	showVer = flag.Bool("v", false, "print version and exit")
)

var version = "dev"

func main() {
	flag.Parse()

	if *showVer {
		fmt.Println("cleancycled", version)
		return
	}

	if err := godotenv.Load(); err == nil {
		fmt.Println("loaded environment from .env")
	}

	cfg := config.LoadConfig(*cfile)
	if *debug {
		cfg.System.Debug = true
		cfg.Logger.Mode = "development"
	}
	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	if *initdb {
		if err := application.MigrateDB(); err != nil {
			zap.S().Fatalf("migration failed: %v", err)
		}
		application.InitDb()
		zap.S().Info("database initialized")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := webserver.New(application)
	webapi.Register(server.API(), webapi.Deps{
		Orders:    application.Orders(),
		Customers: application.Customers(),
		Catalog:   application.Catalog(),
		Clock:     repository.SystemClock{},
		Bus:       application.Bus(),
	})

	if err := server.Start(ctx); err != nil {
		zap.S().Fatalf("web server failed: %v", err)
	}
	zap.S().Info("shutdown complete")
}
