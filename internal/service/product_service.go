package service

import (
	"catalog-service/internal/entity"
	"catalog-service/internal/repository"
	"context"
	"errors"
	"os"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new instance of ProductService.
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProduct creates a single product.
func (s *ProductService) CreateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	created, err := s.productRepo.CreateProduct(ctx, product)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating product")
		return nil, err
	}

	return created, nil
}

// CreateProducts creates all given products in one transaction.
func (s *ProductService) CreateProducts(ctx context.Context, products []*entity.Product) ([]*entity.Product, error) {
	created, err := s.productRepo.CreateProducts(ctx, products)
	if err != nil {
		logger.Error().Err(err).Msgf("Error creating %d products in bulk", len(products))
		return nil, err
	}

	return created, nil
}

// GetProducts retrieves all products.
func (s *ProductService) GetProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := s.productRepo.GetProducts(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error getting products")
		return nil, err
	}

	return products, nil
}

// GetProductByID retrieves a product by ID.
func (s *ProductService) GetProductByID(ctx context.Context, id int) (*entity.Product, error) {
	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logger.Error().Err(err).Msgf("Error getting product by ID %d", id)
		}
		return nil, err
	}

	return product, nil
}

// ListProductsByFilters retrieves products matching the given filter.
func (s *ProductService) ListProductsByFilters(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	products, err := s.productRepo.ListProductsByFilters(ctx, filter)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing products by filters")
		return nil, err
	}

	return products, nil
}

// DeleteProductByID deletes a product by ID.
func (s *ProductService) DeleteProductByID(ctx context.Context, id int) error {
	err := s.productRepo.DeleteProductByID(ctx, id)
	if err != nil {
		logger.Error().Err(err).Msgf("Error deleting product %d", id)
		return err
	}

	return nil
}

// DeleteProductsByID deletes every product in the given id set.
func (s *ProductService) DeleteProductsByID(ctx context.Context, ids []int) error {
	err := s.productRepo.DeleteProductsByID(ctx, ids)
	if err != nil {
		logger.Error().Err(err).Msgf("Error deleting %d products in bulk", len(ids))
		return err
	}

	return nil
}
