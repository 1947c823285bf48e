package registry

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service records artifacts passing through the storage layer. The database
// is optional: a service created with a nil connection disables itself and
// every call becomes a no-op.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a registry service. db may be nil.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		db:     db,
		logger: logger,
	}
}

// Enabled reports whether the registry has a database behind it.
func (s *Service) Enabled() bool {
	return s.db != nil
}

// Migrate creates or updates the artifacts table.
func (s *Service) Migrate() error {
	if !s.Enabled() {
		return nil
	}
	if err := s.db.AutoMigrate(&Artifact{}); err != nil {
		return fmt.Errorf("failed to migrate artifacts table: %w", err)
	}
	return nil
}

// Record inserts an artifact row. Disabled registries accept and drop it.
func (s *Service) Record(ctx context.Context, a *Artifact) error {
	if !s.Enabled() {
		return nil
	}

	if err := s.db.WithContext(ctx).Create(a).Error; err != nil {
		s.logger.Error("Failed to record artifact",
			zap.String("key", a.Key),
			zap.String("kind", a.Kind),
			zap.Error(err),
		)
		return fmt.Errorf("failed to record artifact: %w", err)
	}

	s.logger.Info("Recorded artifact",
		zap.String("bucket", a.Bucket),
		zap.String("key", a.Key),
		zap.String("kind", a.Kind),
		zap.Int64("size_bytes", a.SizeBytes),
	)
	return nil
}

// Recent returns up to limit artifacts, newest first.
func (s *Service) Recent(ctx context.Context, limit int) ([]Artifact, error) {
	if !s.Enabled() {
		return nil, nil
	}

	var items []Artifact
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts: %w", err)
	}

	return items, nil
}
