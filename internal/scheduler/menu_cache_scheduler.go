package scheduler

import (
	"context"
	"time"

	"github.com/elegance/restaurant-backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

const refreshTimeout = 10 * time.Second

// MenuRefresher reloads the cached menu from the database
type MenuRefresher interface {
	RefreshCache(ctx context.Context) error
}

// MenuCacheScheduler periodically refreshes the menu cache
type MenuCacheScheduler struct {
	cron      *cron.Cron
	refresher MenuRefresher
	spec      string
}

func NewMenuCacheScheduler(refresher MenuRefresher, spec string) *MenuCacheScheduler {
	return &MenuCacheScheduler{
		cron:      cron.New(),
		refresher: refresher,
		spec:      spec,
	}
}

// Start warms the cache once and then schedules refreshes
func (s *MenuCacheScheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.refresh); err != nil {
		logger.Error("Failed to add cron job for menu cache refresh", err, map[string]interface{}{
			"spec": s.spec,
		})
		return err
	}

	s.refresh()
	s.cron.Start()
	logger.Info("Menu cache scheduler started", map[string]interface{}{
		"spec": s.spec,
	})
	return nil
}

func (s *MenuCacheScheduler) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	if err := s.refresher.RefreshCache(ctx); err != nil {
		logger.Error("Failed to refresh menu cache", err)
	}
}

// Stop waits for a running refresh to finish
func (s *MenuCacheScheduler) Stop() {
	logger.Info("Stopping menu cache scheduler...")
	<-s.cron.Stop().Done()
	logger.Info("Menu cache scheduler stopped")
}
