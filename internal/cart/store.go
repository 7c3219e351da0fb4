package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"zuri_back_end/internal/database"
	"zuri_back_end/internal/models"

	"github.com/redis/go-redis/v9"
)

// Panier serveur : JSON dans Redis sous cart:<userID>, TTL de 30 jours
// glissants. La saga de checkout ne le vide qu'après persistance de la
// commande.
const TTL = 30 * 24 * time.Hour

func key(userID string) string { return "cart:" + userID }

// Get retourne les articles du panier (vide si absent).
func Get(ctx context.Context, userID string) ([]models.CartItem, error) {
	data, err := database.Redis.Get(ctx, key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return []models.CartItem{}, nil
	}
	if err != nil {
		return nil, err
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Save remplace le contenu du panier.
func Save(ctx context.Context, userID string, items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return database.Redis.Set(ctx, key(userID), data, TTL).Err()
}

// Clear supprime le panier. Seul point de sortie : personne d'autre ne
// connaît le format de la clé.
func Clear(ctx context.Context, userID string) error {
	return database.Redis.Del(ctx, key(userID)).Err()
}

// RedisStore implémente le port CartStore de la saga.
type RedisStore struct{}

func NewRedisStore() *RedisStore { return &RedisStore{} }

func (s *RedisStore) Clear(ctx context.Context, userID string) error {
	return Clear(ctx, userID)
}
