package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shandysiswandi/storefront/internal/catalog/entity"
	"github.com/shandysiswandi/storefront/internal/pkg/goerror"
	"github.com/shandysiswandi/storefront/internal/pkg/storage"
)

type UpdateProductImageInput struct {
	ProductID int32
	Slot      entity.ImageSlot
	File      io.Reader
}

func (s *Usecase) UpdateProductImage(ctx context.Context, in UpdateProductImageInput) (*entity.Product, error) {
	ctx, span := s.startSpan(ctx, "UpdateProductImage")
	defer span.End()

	if in.Slot == "" {
		in.Slot = entity.ImageSlotImage
	}
	if !in.Slot.Valid() {
		return nil, goerror.NewInvalidInput(nil, "slot", "The slot must be one of image, image_2 or thumbnail")
	}
	if in.File == nil {
		return nil, goerror.NewInvalidInput(nil, "image", "The image file is required")
	}

	p, err := s.product(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}

	contentType, ext, body, err := storage.SniffImage(in.File)
	if errors.Is(err, storage.ErrUnsupportedFormat) {
		return nil, goerror.NewInvalidInput(nil, "image", "The image must be a jpeg, png, gif or webp image")
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to read product image", "product_id", p.ID, "error", err)
		return nil, goerror.NewInvalidFormat()
	}

	productID := strconv.FormatInt(int64(p.ID), 10)
	bucket := strings.TrimSpace(s.cfg.GetString("modules.catalog.image_bucket"))
	baseURL := strings.TrimSpace(s.cfg.GetString("modules.catalog.image_base_url"))
	key := storage.ObjectKey("products/"+productID+"/"+string(in.Slot), s.uuid.Generate(), ext)

	_, err = s.storage.Put(ctx, bucket, key,
		storage.LimitReader(body, s.cfg.GetInt64("modules.catalog.image_max_size_bytes")),
		storage.PutOptions{
			Size:        -1,
			ContentType: contentType,
			Metadata:    map[string]string{"product_id": productID},
		})
	if errors.Is(err, storage.ErrTooLarge) {
		return nil, goerror.NewInvalidInput(nil, "image", "The image is too large")
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to upload product image", "product_id", p.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	imageURL := storage.PublicURL(baseURL, bucket, key)
	if err := s.repoDB.UpdateProductImage(ctx, p.ID, in.Slot, imageURL); err != nil {
		slog.ErrorContext(ctx, "failed to repo update product image", "product_id", p.ID, "slot", in.Slot, "error", err)
		return nil, goerror.NewServer(err)
	}

	previous := p.Image
	switch in.Slot {
	case entity.ImageSlotImage2:
		previous, p.Image2 = p.Image2, imageURL
	case entity.ImageSlotThumbnail:
		previous, p.Thumbnail = p.Thumbnail, imageURL
	default:
		p.Image = imageURL
	}

	if oldKey, ok := storage.KeyFromURL(baseURL, bucket, previous); ok {
		if err := s.storage.Delete(ctx, bucket, oldKey); err != nil {
			slog.WarnContext(ctx, "failed to delete previous product image", "product_id", p.ID, "key", oldKey, "error", err)
		}
	}

	return p, nil
}
