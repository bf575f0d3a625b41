package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/torch-group/torch-api/internal/core/domain"
	"github.com/torch-group/torch-api/internal/core/ports"
)

// SiteService owns the settings singleton and the dashboard counts. Storage
// failures here surface as errors and become 503s; there is no mock-data
// fallback masking a down database.
type SiteService struct {
	settings ports.SettingsRepository
	stats    ports.StatsRepository
	log      zerolog.Logger
}

func NewSiteService(settings ports.SettingsRepository, stats ports.StatsRepository, log zerolog.Logger) *SiteService {
	return &SiteService{settings: settings, stats: stats, log: log}
}

func (s *SiteService) GetSettings(ctx context.Context) (*domain.SiteSettings, error) {
	return s.settings.Get(ctx)
}

func (s *SiteService) UpdateSettings(ctx context.Context, settings *domain.SiteSettings) (*domain.SiteSettings, error) {
	settings.UpdatedAt = time.Now().UTC()
	if err := s.settings.Put(ctx, settings); err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}
	s.log.Info().Str("site_name", settings.SiteName).Msg("site settings updated")
	return settings, nil
}

func (s *SiteService) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	stats, err := s.stats.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	return stats, nil
}
