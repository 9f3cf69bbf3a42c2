package app

import (
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	evbus "github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/cleancycle/cleancycle/config"
	"github.com/cleancycle/cleancycle/internal/repository"
	"github.com/cleancycle/cleancycle/internal/repository/boltrepo"
	"github.com/cleancycle/cleancycle/internal/repository/gormrepo"
	"github.com/cleancycle/cleancycle/internal/repository/memrepo"
)

type Application struct {
	appConfig *config.AppConfig
	gormDB    *gorm.DB
	boltStore *boltrepo.Store
	sched     *cron.Cron
	bus       evbus.Bus

	orders    repository.OrderRepository
	customers repository.CustomerRepository
	catalog   repository.CatalogRepository
}

// Ensure Application implements all interfaces
var (
	_ ConfigProvider     = (*Application)(nil)
	_ DBProvider         = (*Application)(nil)
	_ SchedulerProvider  = (*Application)(nil)
	_ BusProvider        = (*Application)(nil)
	_ RepositoryProvider = (*Application)(nil)
	_ AppContext         = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig { return a.appConfig }

func (a *Application) DB() *gorm.DB { return a.gormDB }

func (a *Application) Scheduler() *cron.Cron { return a.sched }

func (a *Application) Bus() evbus.Bus { return a.bus }

func (a *Application) Orders() repository.OrderRepository { return a.orders }

func (a *Application) Customers() repository.CustomerRepository { return a.customers }

func (a *Application) Catalog() repository.CatalogRepository { return a.catalog }

// OverrideRepositories replaces the wired repositories (used in tests).
func (a *Application) OverrideRepositories(orders repository.OrderRepository, customers repository.CustomerRepository, catalog repository.CatalogRepository) {
	a.orders = orders
	a.customers = customers
	a.catalog = catalog
}

func (a *Application) Init(cfg *config.AppConfig) {
	a.appConfig = cfg

	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	a.initLogger(cfg)
	a.initStorage(cfg)

	a.bus = evbus.New()
	a.subscribeAuditLog()

	a.sched = cron.New()
	a.registerJobs()
	a.sched.Start()

	zap.S().Infof("application initialized, storage type: %s", cfg.Database.Type)
}

// initLogger builds the global zap logger, mirroring output to a rotated
// file when enabled.
func (a *Application) initLogger(cfg *config.AppConfig) {
	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	var logger *zap.Logger
	var err error
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Logger.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}

		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller())
	} else {
		logger, err = zapConfig.Build(zap.AddCaller())
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)
}

// initStorage opens the configured backend and wires the repositories.
func (a *Application) initStorage(cfg *config.AppConfig) {
	switch cfg.Database.Type {
	case "", "postgres":
		a.gormDB = getDatabase(cfg.Database)
		if err := a.MigrateDB(); err != nil {
			zap.S().Errorf("database migration failed: %v", err)
		}
		a.orders = gormrepo.NewOrderRepo(a.gormDB)
		a.customers = gormrepo.NewCustomerRepo(a.gormDB)
		a.catalog = gormrepo.NewCatalogRepo(a.gormDB)
		a.InitDb()
	case "bolt":
		store, err := boltrepo.Open(cfg.BoltFile())
		if err != nil {
			zap.S().Fatalf("open bolt store: %v", err)
		}
		a.boltStore = store
		a.orders = store.Orders()
		a.customers = store.Customers()
		// Catalog is configuration data; the kv backend serves it
		// from the built-in defaults.
		a.catalog = memrepo.NewStore().Catalog()
	case "memory":
		store := memrepo.NewStore()
		a.orders = store.Orders()
		a.customers = store.Customers()
		a.catalog = store.Catalog()
	default:
		zap.S().Fatalf("unsupported database type %s", cfg.Database.Type)
	}
}

func getDatabase(cfg config.DBConfig) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable TimeZone=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Passwd, cfg.Name, time.Local.String())

	logLevel := gormlogger.Warn
	if cfg.Debug {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		zap.S().Fatalf("database connection failed: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		zap.S().Fatalf("database handle unavailable: %v", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxConn)
	sqlDB.SetMaxIdleConns(cfg.IdleConn)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db
}

// Release stops background work and closes storage handles.
func (a *Application) Release() {
	if a.sched != nil {
		a.sched.Stop()
	}
	if a.boltStore != nil {
		_ = a.boltStore.Close()
	}
	if a.gormDB != nil {
		if sqlDB, err := a.gormDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	_ = zap.L().Sync()
}
