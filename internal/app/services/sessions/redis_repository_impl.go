package sessions

import (
	"context"
	"time"

	"clinicportal-service/internal/app/models"
	"clinicportal-service/internal/pkg/constvars"
	"clinicportal-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

type redisSessionRepository struct {
	client *redis.Client
}

func NewRedisSessionRepository(client *redis.Client) SessionRepository {
	return &redisSessionRepository{client: client}
}

func (r *redisSessionRepository) CreateSession(ctx context.Context, session *models.Session, ttl time.Duration) error {
	jsonValue, err := json.Marshal(session)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = r.client.Set(ctx, constvars.SessionKeyPrefix+session.SessionID, jsonValue, ttl).Err()
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (r *redisSessionRepository) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	data, err := r.client.Get(ctx, constvars.SessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrRedisGet(err)
	}

	session := new(models.Session)
	if err := json.Unmarshal([]byte(data), session); err != nil {
		return nil, exceptions.ErrRedisGet(err)
	}
	return session, nil
}

func (r *redisSessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	err := r.client.Del(ctx, constvars.SessionKeyPrefix+sessionID).Err()
	if err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}

func (r *redisSessionRepository) SetOTPChallenge(ctx context.Context, challengeKey string, ttl time.Duration) error {
	err := r.client.Set(ctx, constvars.OTPChallengeKeyPrefix+challengeKey, time.Now().UTC().Format(time.RFC3339), ttl).Err()
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (r *redisSessionRepository) HasOTPChallenge(ctx context.Context, challengeKey string) (bool, error) {
	_, err := r.client.Get(ctx, constvars.OTPChallengeKeyPrefix+challengeKey).Result()
	if err == redis.Nil {
		return false, nil
	} else if err != nil {
		return false, exceptions.ErrRedisGet(err)
	}
	return true, nil
}

func (r *redisSessionRepository) ClearOTPChallenge(ctx context.Context, challengeKey string) error {
	err := r.client.Del(ctx, constvars.OTPChallengeKeyPrefix+challengeKey).Err()
	if err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}
