package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"medibook/models"
	"medibook/utils"

	"github.com/go-redis/redis/v8"
)

// SessionStore persists wizard sessions in Redis. The TTL is refreshed on
// every save so an active wizard never expires mid-flow, while abandoned
// drafts vanish on their own.
type SessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewSessionStore builds a store with the default wizard TTL.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{Client: client, TTL: utils.WizardSessionTTL}
}

func (s *SessionStore) key(sessionID string) string {
	return utils.WizardSessionPrefix + sessionID
}

// Save marshals and stores the session, refreshing its TTL.
func (s *SessionStore) Save(ctx context.Context, session *models.WizardSession) error {
	session.LastUpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal wizard session: %w", err)
	}
	if err := s.Client.Set(ctx, s.key(session.SessionID), data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store wizard session: %w", err)
	}
	return nil
}

// Get loads a session, mapping a cache miss to ErrSessionNotFound.
func (s *SessionStore) Get(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	data, err := s.Client.Get(ctx, s.key(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load wizard session: %w", err)
	}
	var session models.WizardSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse wizard session: %w", err)
	}
	return &session, nil
}

// Delete removes a session. Deleting an absent session is not an error.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.Client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete wizard session: %w", err)
	}
	return nil
}
