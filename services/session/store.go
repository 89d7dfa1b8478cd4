// Package session keeps operator sign-in state in Redis. It replaces the
// dashboard's old browser-storage habits: the upstream token, venue id and
// cached venue details all live in one explicit record addressed by the
// gateway's own session token.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"turfdesk/config"
	"turfdesk/models"
	"turfdesk/utils"
)

// Store manages operator sessions and the per-venue details cache.
type Store struct {
	sessions *redis.Client
	cache    *redis.Client
	ttl      time.Duration
	logger   *zap.Logger
}

// NewStore wires a Store onto the shared Redis clients.
func NewStore(sessions, cache *redis.Client) *Store {
	return &Store{
		sessions: sessions,
		cache:    cache,
		ttl:      time.Duration(config.AppConfig.SessionTTLMins) * time.Minute,
		logger:   utils.GetLogger(),
	}
}

// Create mints a gateway session token and persists the session record.
// The JWT subject is the session id; the record also keeps a hash of the
// token so a parsed-but-stale token can never resolve a different session.
func (s *Store) Create(ctx context.Context, upstreamToken, name, email, venueID string) (string, *models.OperatorSession, error) {
	sessionID := uuid.New().String()

	token, err := utils.GenerateToken(sessionID, email, s.ttl)
	if err != nil {
		return "", nil, fmt.Errorf("failed to mint session token: %w", err)
	}

	now := time.Now()
	sess := &models.OperatorSession{
		SessionID:     sessionID,
		TokenHash:     utils.HashToken(token),
		UpstreamToken: upstreamToken,
		OperatorName:  name,
		OperatorEmail: email,
		VenueID:       venueID,
		CreatedAt:     now,
		LastUpdatedAt: now,
	}
	if err := s.save(ctx, sess); err != nil {
		return "", nil, err
	}
	return token, sess, nil
}

// Get loads a session by id, verifying the presented token's hash.
func (s *Store) Get(ctx context.Context, sessionID, token string) (*models.OperatorSession, error) {
	data, err := s.sessions.Get(ctx, utils.SessionPrefix+sessionID).Result()
	if err != nil {
		return nil, err
	}
	var sess models.OperatorSession
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	if sess.TokenHash != utils.HashToken(token) {
		return nil, redis.Nil
	}
	return &sess, nil
}

// SetVenueID records the operator's venue on the session (set after venue
// registration or the first venue fetch).
func (s *Store) SetVenueID(ctx context.Context, sess *models.OperatorSession, venueID string) error {
	sess.VenueID = venueID
	return s.save(ctx, sess)
}

// Delete removes a session (logout).
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	return s.sessions.Del(ctx, utils.SessionPrefix+sessionID).Err()
}

// ActiveSessions scans the live session records, for the background
// snapshot-refresh worker.
func (s *Store) ActiveSessions(ctx context.Context) ([]models.OperatorSession, error) {
	var sessions []models.OperatorSession
	iter := s.sessions.Scan(ctx, 0, utils.SessionPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		data, err := s.sessions.Get(ctx, iter.Val()).Result()
		if err != nil {
			continue
		}
		var sess models.OperatorSession
		if err := json.Unmarshal([]byte(data), &sess); err != nil {
			s.logger.Warn("dropping unreadable session record", zap.String("key", iter.Val()), zap.Error(err))
			continue
		}
		sessions = append(sessions, sess)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan sessions: %w", err)
	}
	return sessions, nil
}

func (s *Store) save(ctx context.Context, sess *models.OperatorSession) error {
	sess.LastUpdatedAt = time.Now()
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.sessions.Set(ctx, utils.SessionPrefix+sess.SessionID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// CacheVenue stores the venue details so forms can pre-fill without an
// upstream round-trip.
func (s *Store) CacheVenue(ctx context.Context, venue *models.Venue) error {
	data, err := json.Marshal(venue)
	if err != nil {
		return fmt.Errorf("failed to marshal venue: %w", err)
	}
	return s.cache.Set(ctx, utils.VenueCachePrefix+venue.ID, data, utils.VenueCacheTTL).Err()
}

// CachedVenue returns the cached venue details, or redis.Nil when cold.
func (s *Store) CachedVenue(ctx context.Context, venueID string) (*models.Venue, error) {
	data, err := s.cache.Get(ctx, utils.VenueCachePrefix+venueID).Result()
	if err != nil {
		return nil, err
	}
	var venue models.Venue
	if err := json.Unmarshal([]byte(data), &venue); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached venue: %w", err)
	}
	return &venue, nil
}

// InvalidateVenue drops the cached details after a mutation.
func (s *Store) InvalidateVenue(ctx context.Context, venueID string) error {
	return s.cache.Del(ctx, utils.VenueCachePrefix+venueID).Err()
}
