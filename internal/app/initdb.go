package app

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cleancycle/cleancycle/internal/domain"
	"github.com/cleancycle/cleancycle/pkg/common"
)

// MigrateDB creates or updates the relational schema.
func (a *Application) MigrateDB() error {
	if a.gormDB == nil {
		return nil
	}
	return a.gormDB.AutoMigrate(domain.Tables...)
}

// InitDb seeds reference data after migration: the service catalog, the
// pickup slots and default settings. Existing rows are left alone.
func (a *Application) InitDb() {
	if a.gormDB == nil {
		return
	}
	a.checkCatalog()
	a.checkPickupSlots()
	a.checkSettings()
}

func (a *Application) checkCatalog() {
	for _, svc := range domain.DefaultCatalog() {
		var existing domain.CatalogService
		err := a.gormDB.Where("name = ?", svc.Name).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			svc.ID = common.UUIDint64()
			svc.Status = common.ENABLED
			if err := a.gormDB.Create(&svc).Error; err != nil {
				zap.L().Error("failed to seed catalog service", zap.String("name", svc.Name), zap.Error(err))
			} else {
				zap.L().Info("seeded catalog service", zap.String("name", svc.Name))
			}
		case err != nil:
			zap.L().Error("failed to query catalog service", zap.String("name", svc.Name), zap.Error(err))
		}
	}
}

func (a *Application) checkPickupSlots() {
	for _, slot := range domain.DefaultPickupSlots() {
		var existing domain.PickupSlot
		err := a.gormDB.Where("label = ?", slot.Label).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			slot.ID = common.UUIDint64()
			slot.Status = common.ENABLED
			if err := a.gormDB.Create(&slot).Error; err != nil {
				zap.L().Error("failed to seed pickup slot", zap.String("label", slot.Label), zap.Error(err))
			}
		case err != nil:
			zap.L().Error("failed to query pickup slot", zap.String("label", slot.Label), zap.Error(err))
		}
	}
}

var defaultSettings = []domain.SysConfig{
	{Sort: 10, Type: "system", Name: "BusinessName", Value: "CleanCycle", Remark: "Display name"},
	{Sort: 20, Type: "system", Name: "BusinessPhone", Value: "(555) 123-4567", Remark: "Contact phone"},
	{Sort: 30, Type: "system", Name: "BusinessHours", Value: "Mon-Sat 7AM-7PM", Remark: "Opening hours"},
	{Sort: 40, Type: "booking", Name: "MinLeadDays", Value: "1", Remark: "Minimum days between booking and pickup"},
	{Sort: 50, Type: "tracking", Name: "HistoryDisplayLimit", Value: "5", Remark: "Delivered orders shown in history"},
}

func (a *Application) checkSettings() {
	for _, cfgRow := range defaultSettings {
		var existing domain.SysConfig
		err := a.gormDB.Where("type = ? and name = ?", cfgRow.Type, cfgRow.Name).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			cfgRow.ID = common.UUIDint64()
			cfgRow.CreatedAt = time.Now()
			if err := a.gormDB.Create(&cfgRow).Error; err != nil {
				zap.L().Error("failed to seed setting", zap.String("name", cfgRow.Name), zap.Error(err))
			}
		case err != nil:
			zap.L().Error("failed to query setting", zap.String("name", cfgRow.Name), zap.Error(err))
		}
	}
}

// GetSettingsStringValue reads one settings row, empty when missing.
func (a *Application) GetSettingsStringValue(category, name string) string {
	if a.gormDB == nil {
		return ""
	}
	var row domain.SysConfig
	if err := a.gormDB.Where("type = ? and name = ?", category, name).First(&row).Error; err != nil {
		return ""
	}
	return row.Value
}
