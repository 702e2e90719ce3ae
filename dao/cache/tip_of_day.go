package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// 空库哨兵值：当天没有任何贴士时也写入缓存，避免同一天反复随机抽取
const noTipSentinel = "none"

type TipOfDayStorage struct {
	redis *redis.Client
}

func NewTipOfDayStorage(rds *redis.Client) *TipOfDayStorage {
	return &TipOfDayStorage{rds}
}

// Get 读取某天的贴士ID
// found=false 表示当天还没有缓存；found=true 且 tipID=0 表示缓存了"无贴士"哨兵
func (s *TipOfDayStorage) Get(ctx context.Context, day string) (tipID uint64, found bool, err error) {
	val, err := s.redis.Get(ctx, s.key(day)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	if val == noTipSentinel {
		return 0, true, nil
	}

	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

// Remember 写入某天的贴士ID，tipID=0 写入哨兵
// SETNX 先写先得：并发首读各自抽取时只有一个写入生效，其余读回胜者，保证同一天收敛
func (s *TipOfDayStorage) Remember(ctx context.Context, day string, tipID uint64, ttl time.Duration) (uint64, error) {
	val := noTipSentinel
	if tipID != 0 {
		val = strconv.FormatUint(tipID, 10)
	}

	ok, err := s.redis.SetNX(ctx, s.key(day), val, ttl).Result()
	if err != nil {
		return 0, err
	}
	if ok {
		return tipID, nil
	}

	// 已有胜者，读回
	winner, found, err := s.Get(ctx, day)
	if err != nil {
		return 0, err
	}
	if !found {
		// 胜者恰好过期，退回本次抽取结果
		return tipID, nil
	}
	return winner, nil
}

// Invalidate 当某天缓存的正是该贴士时删除缓存条目
func (s *TipOfDayStorage) Invalidate(ctx context.Context, day string, tipID uint64) error {
	cached, found, err := s.Get(ctx, day)
	if err != nil {
		return err
	}
	if !found || cached != tipID {
		return nil
	}
	return s.redis.Del(ctx, s.key(day)).Err()
}

// 每日贴士缓存
// tip:day:<YYYY-MM-DD>
func (s *TipOfDayStorage) key(day string) string {
	return fmt.Sprintf("tip:day:%s", day)
}
