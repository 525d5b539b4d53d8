package customer

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/storefront/internal/customer/inbound"
	"github.com/shandysiswandi/storefront/internal/customer/outbound/db"
	"github.com/shandysiswandi/storefront/internal/customer/outbound/facebook"
	"github.com/shandysiswandi/storefront/internal/customer/outbound/mq"
	"github.com/shandysiswandi/storefront/internal/customer/usecase"
	"github.com/shandysiswandi/storefront/internal/pkg/clock"
	"github.com/shandysiswandi/storefront/internal/pkg/config"
	"github.com/shandysiswandi/storefront/internal/pkg/hash"
	"github.com/shandysiswandi/storefront/internal/pkg/instrument"
	"github.com/shandysiswandi/storefront/internal/pkg/jwt"
	"github.com/shandysiswandi/storefront/internal/pkg/messaging"
	"github.com/shandysiswandi/storefront/internal/pkg/router"
	"github.com/shandysiswandi/storefront/internal/pkg/storage"
	"github.com/shandysiswandi/storefront/internal/pkg/uid"
	"github.com/shandysiswandi/storefront/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool
	Messaging  messaging.Messaging
	Storage    storage.Storage
	Config     config.Config
	Instrument instrument.Instrumentation
	UID        uid.NumberID
	UUID       uid.StringID
	Token      uid.StringID
	Clock      clock.Clocker
	Validator  validator.Validator
	Router     *router.Router
	JWT        jwt.JWT
	Argon2ID   hash.Hash
	Bcrypt     hash.Hash
	HMAC       hash.Hash
}

func New(dep Dependency) error {
	uc := usecase.New(usecase.Dependency{
		RepoDB:        db.NewDB(dep.DBConn, dep.Instrument),
		RepoMessaging: mq.NewMessaging(dep.Messaging, dep.Instrument),
		RepoSocial: facebook.New(facebook.Config{
			ClientID:     dep.Config.GetString("modules.customer.facebook.client_id"),
			ClientSecret: dep.Config.GetString("modules.customer.facebook.client_secret"),
			GraphURL:     dep.Config.GetString("modules.customer.facebook.graph_url"),
		}, dep.Instrument),
		Storage:    dep.Storage,
		Validator:  dep.Validator,
		Config:     dep.Config,
		Argon2ID:   dep.Argon2ID,
		Bcrypt:     dep.Bcrypt,
		HMAC:       dep.HMAC,
		UID:        dep.UID,
		UUID:       dep.UUID,
		Token:      dep.Token,
		Clock:      dep.Clock,
		JWT:        dep.JWT,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
