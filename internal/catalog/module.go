package catalog

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/storefront/internal/catalog/inbound"
	"github.com/shandysiswandi/storefront/internal/catalog/outbound/cache"
	"github.com/shandysiswandi/storefront/internal/catalog/outbound/db"
	"github.com/shandysiswandi/storefront/internal/catalog/usecase"
	"github.com/shandysiswandi/storefront/internal/pkg/clock"
	"github.com/shandysiswandi/storefront/internal/pkg/config"
	"github.com/shandysiswandi/storefront/internal/pkg/instrument"
	"github.com/shandysiswandi/storefront/internal/pkg/router"
	"github.com/shandysiswandi/storefront/internal/pkg/storage"
	"github.com/shandysiswandi/storefront/internal/pkg/uid"
	"github.com/shandysiswandi/storefront/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool
	CacheConn  redis.UniversalClient
	Storage    storage.Storage
	Config     config.Config
	Instrument instrument.Instrumentation
	UID        uid.NumberID
	UUID       uid.StringID
	Clock      clock.Clocker
	Validator  validator.Validator
	Router     *router.Router
}

func New(dep Dependency) error {
	ttl := time.Duration(dep.Config.GetInt64("modules.catalog.cache_ttl_seconds")) * time.Second

	uc := usecase.New(usecase.Dependency{
		RepoDB:     db.NewDB(dep.DBConn, dep.Instrument),
		RepoCache:  cache.NewCache(dep.CacheConn, ttl, dep.Instrument),
		Storage:    dep.Storage,
		Validator:  dep.Validator,
		Config:     dep.Config,
		UID:        dep.UID,
		UUID:       dep.UUID,
		Clock:      dep.Clock,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
