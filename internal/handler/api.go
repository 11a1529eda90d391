package handler

import (
	"github.com/countydirectory/internal/service"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db        *gorm.DB
	pages     *service.PageService
	directory *service.DirectoryService
	log       *zap.Logger
}

// NewAPI constructs a handler set with shared services.
func NewAPI(db *gorm.DB, log *zap.Logger) *API {
	if log == nil {
		log = zap.NewNop()
	}
	return &API{
		db:        db,
		pages:     service.NewPageService(db),
		directory: service.NewDirectoryService(db),
		log:       log,
	}
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}
