package history

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/KirkDiggler/robuxroyale/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	historyKeyPrefix = "history:"
	statsKeyPrefix   = "stats:"

	statRounds        = "rounds"
	statWins          = "wins"
	statLosses        = "losses"
	statTotalBet      = "total_bet"
	statTotalWinnings = "total_winnings"
)

// Config holds configuration for the Redis history repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Cap is how many entries a session keeps
	Cap int

	// TTL expires a session's keys with the session itself, zero keeps them
	TTL time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	cap    int
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed history repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RedisClient == nil {
		return nil, ErrNilRedisClient
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	capacity := cfg.Cap
	if capacity <= 0 {
		capacity = DefaultCap
	}

	return &redisRepository{
		client: cfg.RedisClient,
		cap:    capacity,
		ttl:    cfg.TTL,
	}, nil
}

func historyKey(sessionID string) string {
	return fmt.Sprintf("%s%s", historyKeyPrefix, sessionID)
}

func statsKey(sessionID string) string {
	return fmt.Sprintf("%s%s", statsKeyPrefix, sessionID)
}

// AddEntry pushes the entry, trims the list to the cap and bumps the stats hash
func (r *redisRepository) AddEntry(ctx context.Context, input *AddEntryInput) error {
	if err := validateAdd(input); err != nil {
		return err
	}

	entryJSON, err := json.Marshal(input.Entry)
	if err != nil {
		return fmt.Errorf("failed to marshal history entry: %w", err)
	}

	hKey := historyKey(input.SessionID)
	sKey := statsKey(input.SessionID)

	wins, losses := 0, 1
	if input.Entry.Result == models.HistoryResultWon {
		wins, losses = 1, 0
	}

	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, hKey, entryJSON)
	pipe.LTrim(ctx, hKey, 0, int64(r.cap-1))
	pipe.HIncrBy(ctx, sKey, statRounds, 1)
	pipe.HIncrBy(ctx, sKey, statWins, int64(wins))
	pipe.HIncrBy(ctx, sKey, statLosses, int64(losses))
	pipe.HIncrBy(ctx, sKey, statTotalBet, int64(input.Entry.BetAmount))
	pipe.HIncrBy(ctx, sKey, statTotalWinnings, int64(input.Entry.Winnings))
	if r.ttl > 0 {
		pipe.Expire(ctx, hKey, r.ttl)
		pipe.Expire(ctx, sKey, r.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add history entry: %w", err)
	}

	return nil
}

// ListEntries reads the newest entries first
func (r *redisRepository) ListEntries(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	stop := int64(-1)
	if input.Limit > 0 {
		stop = int64(input.Limit - 1)
	}

	raw, err := r.client.LRange(ctx, historyKey(input.SessionID), 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	entries := make([]*models.HistoryEntry, 0, len(raw))
	for _, item := range raw {
		var entry models.HistoryEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal history entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	return &ListEntriesOutput{
		Entries: entries,
	}, nil
}

// GetStats reads the stats hash, a missing hash is an empty session
func (r *redisRepository) GetStats(ctx context.Context, input *GetStatsInput) (*models.SessionStats, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrEmptySessionID
	}

	values, err := r.client.HGetAll(ctx, statsKey(input.SessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	stats := &models.SessionStats{}
	fields := map[string]*int{
		statRounds:        &stats.Rounds,
		statWins:          &stats.Wins,
		statLosses:        &stats.Losses,
		statTotalBet:      &stats.TotalBet,
		statTotalWinnings: &stats.TotalWinnings,
	}
	for field, dst := range fields {
		value, ok := values[field]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid stats field %s: %w", field, err)
		}
		*dst = n
	}

	return stats, nil
}

// DeleteSession removes both keys
func (r *redisRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.SessionID == "" {
		return ErrEmptySessionID
	}

	if err := r.client.Del(ctx, historyKey(input.SessionID), statsKey(input.SessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session history: %w", err)
	}

	return nil
}
