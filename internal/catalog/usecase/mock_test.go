package usecase

import (
	"context"
	"io"
	"time"

	"github.com/shandysiswandi/storefront/internal/catalog/entity"
	"github.com/shandysiswandi/storefront/internal/pkg/storage"
	"github.com/stretchr/testify/mock"
)

type mockRepoDB struct{ mock.Mock }

func (m *mockRepoDB) ListDepartments(ctx context.Context) ([]entity.Department, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]entity.Department)
	return items, args.Error(1)
}

func (m *mockRepoDB) GetDepartment(ctx context.Context, id int32) (*entity.Department, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*entity.Department)
	return d, args.Error(1)
}

func (m *mockRepoDB) ListCategories(ctx context.Context) ([]entity.Category, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]entity.Category)
	return items, args.Error(1)
}

func (m *mockRepoDB) GetCategory(ctx context.Context, id int32) (*entity.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*entity.Category)
	return c, args.Error(1)
}

func (m *mockRepoDB) ListCategoriesByDepartment(ctx context.Context, departmentID int32) ([]entity.Category, error) {
	args := m.Called(ctx, departmentID)
	items, _ := args.Get(0).([]entity.Category)
	return items, args.Error(1)
}

func (m *mockRepoDB) ListCategoriesByProduct(ctx context.Context, productID int32) ([]entity.Category, error) {
	args := m.Called(ctx, productID)
	items, _ := args.Get(0).([]entity.Category)
	return items, args.Error(1)
}

func (m *mockRepoDB) ListProducts(ctx context.Context, f entity.ProductFilter) ([]entity.Product, int64, error) {
	args := m.Called(ctx, f)
	items, _ := args.Get(0).([]entity.Product)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *mockRepoDB) GetProduct(ctx context.Context, id int32) (*entity.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*entity.Product)
	return p, args.Error(1)
}

func (m *mockRepoDB) ListProductLocations(ctx context.Context, productID int32) ([]entity.ProductLocation, error) {
	args := m.Called(ctx, productID)
	items, _ := args.Get(0).([]entity.ProductLocation)
	return items, args.Error(1)
}

func (m *mockRepoDB) UpdateProductImage(ctx context.Context, productID int32, slot entity.ImageSlot, url string) error {
	return m.Called(ctx, productID, slot, url).Error(0)
}

func (m *mockRepoDB) ListReviews(ctx context.Context, productID int32) ([]entity.Review, error) {
	args := m.Called(ctx, productID)
	items, _ := args.Get(0).([]entity.Review)
	return items, args.Error(1)
}

func (m *mockRepoDB) CreateReview(ctx context.Context, r entity.Review) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockRepoDB) ListAttributes(ctx context.Context) ([]entity.Attribute, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]entity.Attribute)
	return items, args.Error(1)
}

func (m *mockRepoDB) GetAttribute(ctx context.Context, id int32) (*entity.Attribute, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*entity.Attribute)
	return a, args.Error(1)
}

func (m *mockRepoDB) ListAttributeValues(ctx context.Context, attributeID int32) ([]entity.AttributeValue, error) {
	args := m.Called(ctx, attributeID)
	items, _ := args.Get(0).([]entity.AttributeValue)
	return items, args.Error(1)
}

func (m *mockRepoDB) ListProductAttributes(ctx context.Context, productID int32) ([]entity.ProductAttributeValue, error) {
	args := m.Called(ctx, productID)
	items, _ := args.Get(0).([]entity.ProductAttributeValue)
	return items, args.Error(1)
}

type mockRepoCache struct{ mock.Mock }

func (m *mockRepoCache) GetDepartments(ctx context.Context) ([]entity.Department, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]entity.Department)
	return items, args.Error(1)
}

func (m *mockRepoCache) SetDepartments(ctx context.Context, items []entity.Department) error {
	return m.Called(ctx, items).Error(0)
}

func (m *mockRepoCache) GetCategories(ctx context.Context) ([]entity.Category, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]entity.Category)
	return items, args.Error(1)
}

func (m *mockRepoCache) SetCategories(ctx context.Context, items []entity.Category) error {
	return m.Called(ctx, items).Error(0)
}

type mockStorage struct{ mock.Mock }

func (m *mockStorage) Close() error { return nil }

func (m *mockStorage) Put(ctx context.Context, bucket, key string, r io.Reader, opts storage.PutOptions) (storage.Object, error) {
	n, err := io.Copy(io.Discard, r)
	if err != nil {
		return storage.Object{}, err
	}
	args := m.Called(ctx, bucket, key, opts)
	return storage.Object{Bucket: bucket, Key: key, Size: n}, args.Error(0)
}

func (m *mockStorage) Stat(ctx context.Context, bucket, key string) (storage.Object, error) {
	args := m.Called(ctx, bucket, key)
	return storage.Object{}, args.Error(0)
}

func (m *mockStorage) Delete(ctx context.Context, bucket, key string) error {
	return m.Called(ctx, bucket, key).Error(0)
}

func (m *mockStorage) SignedURL(ctx context.Context, bucket, key string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, bucket, key, expiry)
	return args.String(0), args.Error(1)
}

type seqID struct{ n int64 }

func (s *seqID) Generate() int64 { s.n++; return s.n }

type staticString string

func (s staticString) Generate() string { return string(s) }
