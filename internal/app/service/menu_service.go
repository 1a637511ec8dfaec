package service

import (
	"context"
	"errors"

	"github.com/elegance/restaurant-backend/internal/app/model"
	"github.com/elegance/restaurant-backend/internal/app/repository"
	"github.com/elegance/restaurant-backend/internal/catalog"
	"github.com/elegance/restaurant-backend/pkg/logger"
	"gorm.io/gorm"
)

// CatalogSource tells where a menu listing came from. It is logged, never returned to clients.
type CatalogSource string

const (
	SourceDatabase CatalogSource = "database"
	SourceCache    CatalogSource = "cache"
	SourceFallback CatalogSource = "fallback"
)

// MenuCache stores the database catalog between reads
type MenuCache interface {
	Get(ctx context.Context) ([]model.MenuCategory, bool, error)
	Set(ctx context.Context, categories []model.MenuCategory) error
	Invalidate(ctx context.Context) error
}

type MenuService interface {
	// ListCategories never fails: an empty or unreachable store yields the static fallback menu
	ListCategories(ctx context.Context) ([]model.MenuCategory, CatalogSource)
	FindItem(id uint) (*model.MenuItem, error)
	RefreshCache(ctx context.Context) error
}

type menuService struct {
	menuRepo repository.MenuRepository
	cache    MenuCache
}

// NewMenuService creates a menu reader. cache may be nil.
func NewMenuService(menuRepo repository.MenuRepository, cache MenuCache) MenuService {
	return &menuService{menuRepo: menuRepo, cache: cache}
}

func (s *menuService) ListCategories(ctx context.Context) ([]model.MenuCategory, CatalogSource) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx)
		if err != nil {
			logger.Warn("Menu cache read failed", map[string]interface{}{
				"error": err.Error(),
			})
		} else if ok {
			return cached, SourceCache
		}
	}

	categories, err := s.menuRepo.FindAllCategories()
	if err != nil {
		logger.Warn("Serving fallback menu", map[string]interface{}{
			"source": SourceFallback,
			"reason": "unavailable",
			"error":  err.Error(),
		})
		return catalog.Fallback(), SourceFallback
	}
	if len(categories) == 0 {
		logger.Warn("Serving fallback menu", map[string]interface{}{
			"source": SourceFallback,
			"reason": "empty",
		})
		return catalog.Fallback(), SourceFallback
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, categories); err != nil {
			logger.Warn("Menu cache write failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
	return categories, SourceDatabase
}

func (s *menuService) FindItem(id uint) (*model.MenuItem, error) {
	item, err := s.menuRepo.FindItemByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	return item, nil
}

// RefreshCache reloads the database catalog into the cache
func (s *menuService) RefreshCache(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}

	categories, err := s.menuRepo.FindAllCategories()
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		return s.cache.Invalidate(ctx)
	}
	if err := s.cache.Set(ctx, categories); err != nil {
		return err
	}

	logger.Debug("Menu cache refreshed", map[string]interface{}{
		"categories": len(categories),
	})
	return nil
}
