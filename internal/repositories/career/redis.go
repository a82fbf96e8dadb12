package career

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/crease/internal/common/logger"
	"github.com/KirkDiggler/crease/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Key prefixes for Redis
	careerKeyPrefix = "career:"
	ownerKeyPrefix  = "owner:"
	careersKey      = "careers"
)

// Config holds configuration for the Redis career repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	Logger *logrus.Entry
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	log    *logrus.Entry
}

// NewRedis creates a new Redis-backed career repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log := cfg.Logger
	if log == nil {
		log = logger.WithService("career_repository")
	}

	return &redisRepository{
		client: cfg.RedisClient,
		log:    log,
	}, nil
}

// SaveCareer persists a career to Redis
func (r *redisRepository) SaveCareer(ctx context.Context, input *SaveCareerInput) error {
	if input == nil || input.Career == nil {
		return errors.New("input and career cannot be nil")
	}
	if input.Career.ID == "" {
		return errors.New("career ID cannot be empty")
	}

	data, err := encodeCareer(input.Career)
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()

	pipe.Set(ctx, careerKeyPrefix+input.Career.ID, data, 0)
	if input.Career.OwnerID != "" {
		pipe.Set(ctx, ownerKeyPrefix+input.Career.OwnerID, input.Career.ID, 0)
	}
	pipe.SAdd(ctx, careersKey, input.Career.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save career: %w", err)
	}

	return nil
}

// GetCareer retrieves a career by ID from Redis
func (r *redisRepository) GetCareer(ctx context.Context, input *GetCareerInput) (*models.Career, error) {
	if input == nil || input.CareerID == "" {
		return nil, errors.New("input and career ID cannot be empty")
	}

	data, err := r.client.Get(ctx, careerKeyPrefix+input.CareerID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCareerNotFound
		}
		return nil, fmt.Errorf("failed to get career: %w", err)
	}

	return decodeCareer(data, r.log)
}

// GetCareerByOwner retrieves the career owned by a user
func (r *redisRepository) GetCareerByOwner(ctx context.Context, input *GetCareerByOwnerInput) (*models.Career, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	careerID, err := r.client.Get(ctx, ownerKeyPrefix+input.OwnerID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCareerNotFound
		}
		return nil, fmt.Errorf("failed to get career for owner: %w", err)
	}

	return r.GetCareer(ctx, &GetCareerInput{CareerID: careerID})
}

// DeleteCareer removes a career and its indexes from Redis
func (r *redisRepository) DeleteCareer(ctx context.Context, input *DeleteCareerInput) error {
	if input == nil || input.CareerID == "" {
		return errors.New("input and career ID cannot be empty")
	}

	careerKey := careerKeyPrefix + input.CareerID

	// The owner index is read from the raw document so that a corrupt
	// career can still be deleted
	var ownerID string
	data, err := r.client.Get(ctx, careerKey).Bytes()
	switch {
	case err == redis.Nil:
		return ErrCareerNotFound
	case err != nil:
		return fmt.Errorf("failed to get career: %w", err)
	}
	if owner, decodeErr := decodeOwner(data); decodeErr == nil {
		ownerID = owner
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, careerKey)
	pipe.SRem(ctx, careersKey, input.CareerID)
	if ownerID != "" {
		pipe.Del(ctx, ownerKeyPrefix+ownerID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete career: %w", err)
	}

	return nil
}

// ListCareers lists every stored career ID
func (r *redisRepository) ListCareers(ctx context.Context, input *ListCareersInput) (*ListCareersOutput, error) {
	ids, err := r.client.SMembers(ctx, careersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list careers: %w", err)
	}
	sort.Strings(ids)

	return &ListCareersOutput{CareerIDs: ids}, nil
}
