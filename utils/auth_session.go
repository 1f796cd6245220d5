// File: utils/auth_session.go
package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"medibook/models"

	"github.com/go-redis/redis/v8"
)

const AuthSessionPrefix = "authSession:"

// AuthSession is the single source of truth for a signed-in user. It holds
// the profile snapshot, the upstream bearer token the gateway forwards on
// the user's behalf, and the hash of the gateway token issued to the client.
type AuthSession struct {
	User          models.User `json:"user"`
	UpstreamToken string      `json:"upstreamToken"`
	TokenHash     string      `json:"tokenHash"`
	CreatedAt     time.Time   `json:"createdAt"`
	LastUpdatedAt time.Time   `json:"lastUpdatedAt"`
}

// SaveAuthSession saves the session in Redis with a TTL.
func SaveAuthSession(client *redis.Client, userID string, session AuthSession) error {
	session.LastUpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal auth session: %w", err)
	}
	ctx := context.Background()
	if err := client.Set(ctx, AuthSessionPrefix+userID, data, AuthSessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to save auth session: %w", err)
	}
	return nil
}

// GetAuthSession retrieves the session from Redis.
func GetAuthSession(client *redis.Client, userID string) (*AuthSession, error) {
	ctx := context.Background()
	data, err := client.Get(ctx, AuthSessionPrefix+userID).Result()
	if err != nil {
		return nil, err
	}
	var session AuthSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal auth session: %w", err)
	}
	return &session, nil
}

// DeleteAuthSession removes a session from Redis (sign-out teardown).
func DeleteAuthSession(client *redis.Client, userID string) error {
	ctx := context.Background()
	return client.Del(ctx, AuthSessionPrefix+userID).Err()
}
