package cmd

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	appcatalog "github.com/kuyka38/mijawharati-sub000/application/catalog"
	appinbox "github.com/kuyka38/mijawharati-sub000/application/inbox"
	"github.com/kuyka38/mijawharati-sub000/config"
	"github.com/kuyka38/mijawharati-sub000/domain/cart"
	"github.com/kuyka38/mijawharati-sub000/domain/catalog"
	"github.com/kuyka38/mijawharati-sub000/domain/inbox"
	"github.com/kuyka38/mijawharati-sub000/infrastructure/assets"
	"github.com/kuyka38/mijawharati-sub000/infrastructure/persistence/memory"
	"github.com/kuyka38/mijawharati-sub000/infrastructure/persistence/sqlite"
	"github.com/kuyka38/mijawharati-sub000/pkg/logger"
)

// App 应用程序结构体：装配好的数据层
type App struct {
	cfg *config.Config
	db  *gorm.DB

	Catalog *appcatalog.Service
	Inbox   *appinbox.Service
	Cart    *cart.Aggregator
}

// NewApp 按配置装配仓储与应用服务
func NewApp(cfg *config.Config) (*App, error) {
	var (
		db          *gorm.DB
		productRepo catalog.Repository
		messageRepo inbox.Repository
	)

	// 根据配置选择仓储实现
	switch cfg.Database.Type {
	case "memory":
		logger.Info("Using in-memory persistence layer")
		productRepo = memory.NewProductRepository()
		messageRepo = memory.NewMessageRepository()

	case "sqlite", "":
		dbConfig := &sqlite.Config{
			Path:            cfg.Database.Path,
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
			LogLevel:        cfg.Database.LogLevel,
		}

		var err error
		db, err = dbConfig.Connect()
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := sqlite.Migrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate schema: %w", err)
		}

		productRepo = sqlite.NewProductRepository(db)
		messageRepo = sqlite.NewMessageRepository(db)

	default:
		return nil, fmt.Errorf("unknown database type: %q", cfg.Database.Type)
	}

	imageStore, err := assets.NewStore(cfg.Assets.Root, cfg.Assets.StoreTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize asset store: %w", err)
	}

	return &App{
		cfg:     cfg,
		db:      db,
		Catalog: appcatalog.NewService(productRepo, imageStore),
		Inbox:   appinbox.NewService(messageRepo),
		Cart:    cart.NewAggregator(),
	}, nil
}

// Run 订阅商品与消息快照流并记录每次推送，直到 ctx 取消。
// 数据层没有对外网络面，这个入口用于本地验证装配是否完整。
func (a *App) Run(ctx context.Context) error {
	products, cancelProducts, err := a.Catalog.WatchAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to watch catalog: %w", err)
	}
	defer cancelProducts()

	messages, cancelMessages, err := a.Inbox.Watch(ctx)
	if err != nil {
		return fmt.Errorf("failed to watch inbox: %w", err)
	}
	defer cancelMessages()

	logger.Info("Data layer ready",
		zap.String("database", a.cfg.Database.Type),
		zap.String("assets_root", a.cfg.Assets.Root),
	)

	for {
		select {
		case snapshot, ok := <-products:
			if !ok {
				return nil
			}
			logger.Info("Catalog snapshot", zap.Int("products", len(snapshot)))
		case snapshot, ok := <-messages:
			if !ok {
				return nil
			}
			logger.Info("Inbox snapshot", zap.Int("messages", len(snapshot)))
		case <-ctx.Done():
			return nil
		}
	}
}

// Close 释放数据库连接
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
