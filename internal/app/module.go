package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/storefront/internal/catalog"
	"github.com/shandysiswandi/storefront/internal/customer"
	"github.com/shandysiswandi/storefront/internal/notification"
	"github.com/shandysiswandi/storefront/internal/order"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.customer.enabled") {
		if err := customer.New(customer.Dependency{
			DBConn:     a.dbConn,
			Messaging:  a.messaging,
			Storage:    a.storage,
			Config:     a.config,
			Instrument: a.ins,
			UID:        a.uid,
			UUID:       a.uuid,
			Token:      a.token,
			Clock:      a.clock,
			Validator:  a.validator,
			Router:     a.router,
			JWT:        a.jwt,
			Argon2ID:   a.argon2id,
			Bcrypt:     a.bcrypt,
			HMAC:       a.hmac,
		}); err != nil {
			slog.Error("failed to init module customer", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.catalog.enabled") {
		if err := catalog.New(catalog.Dependency{
			DBConn:     a.dbConn,
			CacheConn:  a.cacheConn,
			Storage:    a.storage,
			Config:     a.config,
			Instrument: a.ins,
			UID:        a.uid,
			UUID:       a.uuid,
			Clock:      a.clock,
			Validator:  a.validator,
			Router:     a.router,
		}); err != nil {
			slog.Error("failed to init module catalog", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.order.enabled") {
		if err := order.New(order.Dependency{
			DBConn:      a.dbConn,
			Messaging:   a.messaging,
			Idempotency: a.idemp,
			Config:      a.config,
			Instrument:  a.ins,
			UID:         a.uid,
			UUID:        a.uuid,
			Clock:       a.clock,
			Validator:   a.validator,
			Router:      a.router,
		}); err != nil {
			slog.Error("failed to init module order", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.notification.enabled") {
		if err := notification.New(notification.Dependency{
			Ctx:        a.ctx,
			Messaging:  a.messaging,
			Mail:       a.mail,
			Config:     a.config,
			Instrument: a.ins,
			UUID:       a.uuid,
			Clock:      a.clock,
			Goroutine:  a.goroutine,
			Validator:  a.validator,
		}); err != nil {
			slog.Error("failed to init module notification", "error", err)
			os.Exit(1)
		}
	}
}
