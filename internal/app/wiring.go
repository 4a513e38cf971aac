// Package app arma las piezas compartidas por cmd/api y cmd/petcare:
// logger, slot local según driver y catálogo de razas.
package app

import (
	"context"
	"fmt"

	"pet-care-scheduler/internal/adapters/breedsource/dogceo"
	"pet-care-scheduler/internal/adapters/breedsource/thedogapi"
	boltstore "pet-care-scheduler/internal/adapters/storage/bolt"
	mem "pet-care-scheduler/internal/adapters/storage/memory"
	pg "pet-care-scheduler/internal/adapters/storage/postgres"
	"pet-care-scheduler/internal/adapters/storage/slot"
	sqlitestore "pet-care-scheduler/internal/adapters/storage/sqlite"
	"pet-care-scheduler/internal/domain/breeds"
	"pet-care-scheduler/internal/platform/config"
	"pet-care-scheduler/internal/platform/logger"
)

func NewLogger(cfg *config.Config, opts logger.Options) logger.Logger {
	opts.Level = logger.ParseLevel(cfg.Log.Level)
	opts.Format = logger.ParseFormat(cfg.Log.Format)
	opts.App = cfg.App.Name
	return logger.New(opts)
}

// OpenUserStore abre el slot de razas del usuario según STORE_DRIVER.
// closeFn libera el archivo/pool; nunca es nil.
func OpenUserStore(ctx context.Context, sc config.StoreConfig) (breeds.UserStore, func() error, error) {
	noop := func() error { return nil }

	switch sc.Driver {
	case config.StoreBolt:
		st, err := boltstore.Open(sc.Path)
		if err != nil {
			return nil, noop, err
		}
		return slot.NewUserBreeds(st.Slot(sc.Key)), st.Close, nil

	case config.StoreSQLite:
		db, err := sqlitestore.Open(ctx, sc.Path)
		if err != nil {
			return nil, noop, err
		}
		return slot.NewUserBreeds(sqlitestore.NewSlot(db, sc.Key)), db.Close, nil

	case config.StorePostgres:
		db, err := pg.Open(sc.DSN)
		if err != nil {
			return nil, noop, fmt.Errorf("postgres: %w", err)
		}
		if err := pg.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, noop, fmt.Errorf("postgres schema: %w", err)
		}
		return slot.NewUserBreeds(pg.NewSlotRepo(db, sc.Key)), db.Close, nil

	case config.StoreMemory:
		return slot.NewUserBreeds(mem.NewSlot("")), noop, nil

	default:
		return nil, noop, fmt.Errorf("unknown store driver %q", sc.Driver)
	}
}

// NewCatalog arma el catálogo con los clientes reales de TheDogAPI y Dog CEO.
func NewCatalog(cfg *config.Config, store breeds.UserStore, log logger.Logger) (*breeds.Catalog, error) {
	meta, err := thedogapi.NewClient(thedogapi.Config{
		BaseURL: cfg.Sources.DogAPIBaseURL,
		APIKey:  cfg.Sources.DogAPIKey,
		Timeout: cfg.Sources.Timeout,
	})
	if err != nil {
		return nil, err
	}

	images, err := dogceo.NewClient(dogceo.Config{
		BaseURL: cfg.Sources.DogCEOBaseURL,
		Timeout: cfg.Sources.Timeout,
	})
	if err != nil {
		return nil, err
	}

	return breeds.NewCatalog(meta, images, store, log, breeds.Config{
		PageSize:         cfg.Sources.PageSize,
		RemoteTimeout:    cfg.Sources.Timeout,
		ImageConcurrency: cfg.Sources.ImageConcurrency,
	}), nil
}
