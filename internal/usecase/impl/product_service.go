package impl

import (
	"context"
	"log/slog"

	deliverycontext "tripdesk/internal/delivery/context"
	"tripdesk/internal/domain/entity"
	domainerrors "tripdesk/internal/domain/errors"
	"tripdesk/internal/domain/repository"
	"tripdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{productRepo: params.ProductRepo, logger: params.Logger}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create adds a catalog item owned by the calling shop.
func (srv *productService) Create(ctx context.Context, input usecase.CreateProductInput) (*entity.Product, error) {
	product := &entity.Product{
		ID:              uuid.New(),
		UserID:          input.OwnerID,
		ShopID:          input.OwnerID,
		Name:            input.Name,
		Description:     input.Description,
		Price:           input.Price,
		DiscountedPrice: input.DiscountedPrice,
		ImageURLs:       input.ImageURLs,
		Category:        input.Category,
		Filter:          input.Filter,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.Any("ownerID", input.OwnerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	return product, nil
}

func (srv *productService) Get(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

func (srv *productService) List(ctx context.Context, input usecase.ListProductInput) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx, repository.CatalogFilter{
		ParentID: input.ShopID,
		Name:     input.Name,
		Category: input.Category,
		MinPrice: input.MinPrice,
		MaxPrice: input.MaxPrice,
		Filter:   input.Filter,
		Deleted:  input.Deleted,
	})

	return products, errors.Wrap(err, "failed to list products")
}

// Update patches a product after checking the caller owns it.
func (srv *productService) Update(ctx context.Context, input usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.ownedProduct(ctx, input.ProductID, input.CallerID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.DiscountedPrice != nil {
		product.DiscountedPrice = *input.DiscountedPrice
	}
	if input.ImageURLs != nil {
		product.ImageURLs = input.ImageURLs
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Filter != nil {
		product.Filter = input.Filter
	}
	if input.Deleted != nil {
		product.Deleted = *input.Deleted
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// Delete permanently removes a product after checking the caller owns it.
func (srv *productService) Delete(ctx context.Context, productID, callerID uuid.UUID) error {
	if _, err := srv.ownedProduct(ctx, productID, callerID); err != nil {
		return err
	}

	if err := srv.productRepo.Delete(ctx, productID); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", productID), slog.Any("callerID", callerID))

	return nil
}

func (srv *productService) ownedProduct(ctx context.Context, productID, callerID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	if product.UserID != callerID {
		return nil, domainerrors.ErrOwnershipViolation
	}

	return product, nil
}
