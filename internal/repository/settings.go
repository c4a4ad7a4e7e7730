package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Preechanamchu/KT-Monitor/internal/models"
	"github.com/redis/go-redis/v9"
)

const incidentIconKey = "settings:incident_icon"

// SettingsRepository хранит настройки оператора в Redis
type SettingsRepository struct {
	redisClient *redis.Client
}

func NewSettingsRepository(redisClient *redis.Client) *SettingsRepository {
	return &SettingsRepository{redisClient: redisClient}
}

// Load возвращает сохраненные настройки, для отсутствующих ключей - значения по умолчанию
func (r *SettingsRepository) Load(ctx context.Context) (models.Settings, error) {
	settings := models.Settings{IncidentIcon: models.IncidentIcons[0]}

	val, err := r.redisClient.Get(ctx, incidentIconKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return settings, nil
		}
		return settings, fmt.Errorf("failed to get settings from redis: %w", err)
	}
	if icon := models.IncidentIcon(val); icon.Valid() {
		settings.IncidentIcon = icon
	}
	return settings, nil
}

// Save сохраняет настройки без срока жизни
func (r *SettingsRepository) Save(ctx context.Context, settings models.Settings) error {
	if err := r.redisClient.Set(ctx, incidentIconKey, string(settings.IncidentIcon), 0).Err(); err != nil {
		return fmt.Errorf("failed to save settings to redis: %w", err)
	}
	return nil
}
