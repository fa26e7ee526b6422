package repository

import (
	"context"
	"errors"
	"fmt"
	"peer_edu_backend/internal/model"
	"peer_edu_backend/internal/util"

	"github.com/go-redis/redis/v8"
)

const DefaultPartnerKeyPrefix = "partnerdb"

// PartnerRepository 配对表：hash 字段为学生 sid，值为搭档 sid
type PartnerRepository struct {
	Redis  *redis.Client
	Prefix string
}

func NewPartnerRepository(rdb *redis.Client, prefix string) *PartnerRepository {
	if prefix == "" {
		prefix = DefaultPartnerKeyPrefix
	}
	return &PartnerRepository{Redis: rdb, Prefix: prefix}
}

func (r *PartnerRepository) key(round model.PairingRound) string {
	return round.Key(r.Prefix)
}

// SetPartner 覆盖写入，后写者生效
func (r *PartnerRepository) SetPartner(ctx context.Context, round model.PairingRound, studentID, partnerID string) error {
	return r.Redis.HSet(ctx, r.key(round), studentID, partnerID).Err()
}

// SetPair 双向写入一对搭档
func (r *PartnerRepository) SetPair(ctx context.Context, round model.PairingRound, a, b string) error {
	key := r.key(round)
	_, err := r.Redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, a, b)
		pipe.HSet(ctx, key, b, a)
		return nil
	})
	if err != nil {
		return fmt.Errorf("store pair %s/%s: %w", a, b, err)
	}
	return nil
}

func (r *PartnerRepository) GetPartner(ctx context.Context, round model.PairingRound, studentID string) (string, error) {
	partner, err := r.Redis.HGet(ctx, r.key(round), studentID).Result()
	if errors.Is(err, redis.Nil) {
		return "", util.ErrPartnerNotAssigned
	}
	if err != nil {
		return "", err
	}
	return partner, nil
}

func (r *PartnerRepository) Partners(ctx context.Context, round model.PairingRound) (map[string]string, error) {
	return r.Redis.HGetAll(ctx, r.key(round)).Result()
}

func (r *PartnerRepository) ClearRound(ctx context.Context, round model.PairingRound) error {
	return r.Redis.Del(ctx, r.key(round)).Err()
}

// ClearAll 删除全局表以及所有按轮次划分的配对表
func (r *PartnerRepository) ClearAll(ctx context.Context) error {
	keys := []string{r.Prefix}
	iter := r.Redis.Scan(ctx, 0, r.Prefix+":*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	return r.Redis.Del(ctx, keys...).Err()
}
