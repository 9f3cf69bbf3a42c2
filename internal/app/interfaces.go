package app

import (
	evbus "github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/cleancycle/cleancycle/config"
	"github.com/cleancycle/cleancycle/internal/repository"
)

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// DBProvider provides relational database access (nil for kv/memory
// storage types).
type DBProvider interface {
	DB() *gorm.DB
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// BusProvider provides the in-process event bus
type BusProvider interface {
	Bus() evbus.Bus
}

// RepositoryProvider provides the wired persistence ports
type RepositoryProvider interface {
	Orders() repository.OrderRepository
	Customers() repository.CustomerRepository
	Catalog() repository.CatalogRepository
}

// AppContext combines all provider interfaces for full application context.
// Services should depend on specific providers or this combined interface.
type AppContext interface {
	ConfigProvider
	DBProvider
	SchedulerProvider
	BusProvider
	RepositoryProvider

	// Application lifecycle methods
	MigrateDB() error
	InitDb()
	Release()
}
