package services

import (
	"log"
	"time"

	"restaurant_pos/internal/models"
	"restaurant_pos/internal/redis"
	"restaurant_pos/internal/repository"
)

type CatalogService interface {
	ListCategories() ([]models.Category, error)
	ListProducts() ([]models.Product, error)
	ListVariants(productID uint) ([]models.ProductVariant, error)
}

type catalogService struct {
	catalogRepo repository.CatalogRepository
	cache       *redis.Client
	cacheTTL    time.Duration
}

// NewCatalogService builds the read side of the catalog. cache may be nil,
// in which case every read goes to the database.
func NewCatalogService(catalogRepo repository.CatalogRepository, cache *redis.Client, cacheTTL time.Duration) CatalogService {
	return &catalogService{catalogRepo: catalogRepo, cache: cache, cacheTTL: cacheTTL}
}

func (s *catalogService) ListCategories() ([]models.Category, error) {
	if s.cache != nil {
		if categories, err := s.cache.GetCategoryList(); err == nil {
			return categories, nil
		}
	}

	categories, err := s.catalogRepo.GetActiveCategories()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetCategoryList(categories, s.cacheTTL); err != nil {
			log.Printf("Warning: failed to cache category list: %v", err)
		}
	}
	return categories, nil
}

func (s *catalogService) ListProducts() ([]models.Product, error) {
	if s.cache != nil {
		if products, err := s.cache.GetProductList(); err == nil {
			return products, nil
		}
	}

	products, err := s.catalogRepo.GetActiveProducts()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetProductList(products, s.cacheTTL); err != nil {
			log.Printf("Warning: failed to cache product list: %v", err)
		}
	}
	return products, nil
}

func (s *catalogService) ListVariants(productID uint) ([]models.ProductVariant, error) {
	return s.catalogRepo.GetVariantsByProduct(productID)
}
