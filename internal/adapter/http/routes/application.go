package routes

import (
	"catalogo_equipamentos/internal/adapter/http/handlers"
	"catalogo_equipamentos/internal/adapter/persistence/repository"
	"catalogo_equipamentos/internal/domain/schema"
	"catalogo_equipamentos/internal/infrastructure/cache"
	"catalogo_equipamentos/internal/infrastructure/config"
	"catalogo_equipamentos/internal/infrastructure/database"
	"catalogo_equipamentos/internal/infrastructure/logger"
	"catalogo_equipamentos/internal/infrastructure/messaging"
	"catalogo_equipamentos/internal/infrastructure/metrics"
	"catalogo_equipamentos/internal/usecase"
	"catalogo_equipamentos/internal/usecase/interfaces"
	"context"
	"fmt"
	"slices"
)

// application holds the wired dependency graph behind the router.
type application struct {
	equipmentHandler *handlers.EquipmentHandler
	metrics          *metrics.Metrics
	closers          []func() error
}

func newApplication(ctx context.Context, cfg *config.Config) (*application, error) {
	const op = "routes.newApplication"

	app := &application{metrics: metrics.New()}

	repo, err := app.openRepository(ctx, cfg)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var query usecase.IEquipmentQueryUseCase = usecase.NewEquipmentQueryUseCase(repo, cfg.Catalog.PageSize)
	notifiers := []interfaces.IEquipmentChangeNotifier{app.metrics}

	if cfg.Cache.Size > 0 {
		viewCache := cache.NewEquipmentViewCache(query, cfg.Cache.Size, cfg.Cache.TTL)
		query = viewCache
		notifiers = append(notifiers, viewCache)
	}

	if cfg.Kafka.Enabled() {
		producer, err := messaging.NewSyncProducer(cfg.Kafka.Brokers)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		publisher := messaging.NewEquipmentEventPublisher(producer, cfg.Kafka.Topic)
		app.closers = append(app.closers, publisher.Close)
		notifiers = append(notifiers, publisher)
	}

	lifecycle := usecase.NewEquipmentUseCase(repo, schema.New(schema.Options{Strict: cfg.Catalog.StrictSchema}), notifiers...)
	app.equipmentHandler = handlers.NewEquipmentHandler(lifecycle, query)

	return app, nil
}

func (a *application) openRepository(ctx context.Context, cfg *config.Config) (interfaces.IEquipmentRepository, error) {
	switch cfg.Store.Driver {
	case config.StoreDynamoDB:
		client, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, err
		}
		if cfg.DynamoDB.CreateTable {
			if err := database.EnsureEquipmentsTable(ctx, client, cfg.DynamoDB.Table); err != nil {
				return nil, err
			}
		}
		return repository.NewEquipmentDynamoRepository(client, cfg.DynamoDB.Table), nil

	case config.StoreSQLite, config.StorePostgres:
		driver, dsn := database.DriverSQLite, cfg.SQL.SQLitePath
		if cfg.Store.Driver == config.StorePostgres {
			driver, dsn = database.DriverPostgres, cfg.SQL.PostgresDSN
		}
		db, err := database.OpenSQL(ctx, driver, dsn)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db.Close)
		if err := database.Migrate(ctx, db, driver); err != nil {
			return nil, err
		}
		return repository.NewEquipmentSQLRepository(db), nil

	case config.StoreFile:
		return repository.NewEquipmentFileRepository(cfg.Store.DataFile)

	case config.StoreMemory:
		return repository.NewEquipmentMemoryRepository(), nil

	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}

// Close releases resources in reverse acquisition order.
func (a *application) Close() {
	for _, closeFn := range slices.Backward(a.closers) {
		if err := closeFn(); err != nil {
			logger.Warn(context.Background(), "[app] close failed", logger.ErrorF(err))
		}
	}
	a.closers = nil
}
