package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/storefront/internal/catalog/entity"
	"github.com/shandysiswandi/storefront/internal/pkg/clock"
	"github.com/shandysiswandi/storefront/internal/pkg/config"
	"github.com/shandysiswandi/storefront/internal/pkg/goerror"
	"github.com/shandysiswandi/storefront/internal/pkg/instrument"
	"github.com/shandysiswandi/storefront/internal/pkg/storage"
	"github.com/shandysiswandi/storefront/internal/pkg/uid"
	"github.com/shandysiswandi/storefront/internal/pkg/validator"
	"github.com/shandysiswandi/storefront/internal/shared/reason"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	ListDepartments(ctx context.Context) ([]entity.Department, error)
	GetDepartment(ctx context.Context, id int32) (*entity.Department, error)

	ListCategories(ctx context.Context) ([]entity.Category, error)
	GetCategory(ctx context.Context, id int32) (*entity.Category, error)
	ListCategoriesByDepartment(ctx context.Context, departmentID int32) ([]entity.Category, error)
	ListCategoriesByProduct(ctx context.Context, productID int32) ([]entity.Category, error)

	ListProducts(ctx context.Context, f entity.ProductFilter) ([]entity.Product, int64, error)
	GetProduct(ctx context.Context, id int32) (*entity.Product, error)
	ListProductLocations(ctx context.Context, productID int32) ([]entity.ProductLocation, error)
	UpdateProductImage(ctx context.Context, productID int32, slot entity.ImageSlot, url string) error

	ListReviews(ctx context.Context, productID int32) ([]entity.Review, error)
	CreateReview(ctx context.Context, r entity.Review) error

	ListAttributes(ctx context.Context) ([]entity.Attribute, error)
	GetAttribute(ctx context.Context, id int32) (*entity.Attribute, error)
	ListAttributeValues(ctx context.Context, attributeID int32) ([]entity.AttributeValue, error)
	ListProductAttributes(ctx context.Context, productID int32) ([]entity.ProductAttributeValue, error)
}

// repoCache misses are reported as goerror.ErrNotFound.
type repoCache interface {
	GetDepartments(ctx context.Context) ([]entity.Department, error)
	SetDepartments(ctx context.Context, items []entity.Department) error
	GetCategories(ctx context.Context) ([]entity.Category, error)
	SetCategories(ctx context.Context, items []entity.Category) error
}

type Usecase struct {
	repoDB    repoDB
	repoCache repoCache
	storage   storage.Storage
	validator validator.Validator
	cfg       config.Config
	uid       uid.NumberID
	uuid      uid.StringID
	clock     clock.Clocker
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	RepoCache  repoCache
	Storage    storage.Storage
	Validator  validator.Validator
	Config     config.Config
	UID        uid.NumberID
	UUID       uid.StringID
	Clock      clock.Clocker
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		repoCache: dep.RepoCache,
		storage:   dep.Storage,
		validator: dep.Validator,
		cfg:       dep.Config,
		uid:       dep.UID,
		uuid:      dep.UUID,
		clock:     dep.Clock,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("catalog.usecase").Start(ctx, name)
}

func (s *Usecase) product(ctx context.Context, id int32) (*entity.Product, error) {
	p, err := s.repoDB.GetProduct(ctx, id)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, reason.ProductNotFound.New()
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get product", "product_id", id, "error", err)
		return nil, goerror.NewServer(err)
	}
	return p, nil
}
