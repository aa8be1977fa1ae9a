package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"backlog/backend/internal/apperror"
	"backlog/backend/internal/models"
)

// GormStore persists games through GORM. The *gorm.DB must be opened with
// TranslateError enabled so a unique-key violation surfaces as
// gorm.ErrDuplicatedKey regardless of driver.
type GormStore struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db, now: time.Now}
}

func (s *GormStore) List(ctx context.Context) ([]models.Game, error) {
	var games []models.Game
	if err := s.db.WithContext(ctx).Find(&games).Error; err != nil {
		return nil, apperror.Storage(err)
	}
	return games, nil
}

func (s *GormStore) Get(ctx context.Context, id int) (*models.Game, error) {
	var game models.Game
	err := s.db.WithContext(ctx).First(&game, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("game", id)
	}
	if err != nil {
		return nil, apperror.Storage(err)
	}
	return &game, nil
}

func (s *GormStore) GetByTitle(ctx context.Context, title string) (*models.Game, error) {
	var game models.Game
	err := s.db.WithContext(ctx).
		Where("title = ?", title).
		Order("steam_app_id").
		First(&game).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("game", title)
	}
	if err != nil {
		return nil, apperror.Storage(err)
	}
	return &game, nil
}

func (s *GormStore) Insert(ctx context.Context, game *models.Game) error {
	// Fast-path existence check. The unique constraint below remains the
	// authoritative conflict source under concurrent creates.
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Game{}).
		Where("steam_app_id = ?", game.SteamAppId).
		Count(&count).Error; err != nil {
		return apperror.Storage(err)
	}
	if count > 0 {
		return apperror.Conflict("game", game.SteamAppId)
	}

	game.Normalize(s.now())

	err := s.db.WithContext(ctx).Create(game).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.Conflict("game", game.SteamAppId)
	}
	if err != nil {
		return apperror.Storage(err)
	}
	return nil
}

func (s *GormStore) Update(ctx context.Context, id int, game *models.Game) (*models.Game, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.ApplyUpdate(game)
	existing.Normalize(s.now())

	if err := s.db.WithContext(ctx).Save(existing).Error; err != nil {
		return nil, apperror.Storage(err)
	}
	return existing, nil
}

func (s *GormStore) Delete(ctx context.Context, id int) error {
	result := s.db.WithContext(ctx).Delete(&models.Game{}, id)
	if result.Error != nil {
		return apperror.Storage(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("game", id)
	}
	return nil
}

func (s *GormStore) SaveAll(ctx context.Context, games []*models.Game) error {
	if len(games) == 0 {
		return nil
	}
	now := s.now()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, game := range games {
			game.Normalize(now)
			if err := tx.Save(game).Error; err != nil {
				return fmt.Errorf("saving game %d: %w", game.SteamAppId, err)
			}
		}
		return nil
	})
	if err != nil {
		return apperror.Storage(err)
	}
	return nil
}
