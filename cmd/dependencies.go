package cmd

import (
	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"stock-advisor/config"
	"stock-advisor/internal/model"
	"stock-advisor/pkg/cache"
	"stock-advisor/pkg/logger"
	"stock-advisor/pkg/sqlite"
	"stock-advisor/pkg/token"
)

type AppDependency struct {
	db        *sqlite.DB
	cfg       *config.Config
	log       *logger.Logger
	validator *goValidator.Validate
	echo      *echo.Echo
	cache     cache.Cache
	tokens    *token.Manager
}

func NewAppDependency() (*AppDependency, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		return nil, err
	}

	db, err := sqlite.NewDB(cfg.DB, log)
	if err != nil {
		log.Error("Failed to open database", zap.Error(err))
		return nil, err
	}

	// create-if-not-exists is the whole schema story here
	if err := db.Migrate(&model.User{}, &model.Report{}, &model.PortfolioLot{}); err != nil {
		log.Error("Failed to migrate schema", zap.Error(err))
		return nil, err
	}

	return &AppDependency{
		cfg:       cfg,
		log:       log,
		validator: goValidator.New(),
		db:        db,
		echo:      echo.New(),
		cache:     cache.NewCache(cfg.Cache.DefaultExpiration, cfg.Cache.CleanupInterval),
		tokens:    token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry),
	}, nil
}

func (d *AppDependency) Close() error {
	d.log.Info("Closing app dependency")
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}
