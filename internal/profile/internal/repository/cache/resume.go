package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/ecache"
	"github.com/redis/go-redis/v9"
	"github.com/unilab/portal/internal/profile/internal/domain"
)

// ErrKeyNotExist 因为我们目前还是只有一个实现，所以可以保持用别名
var ErrKeyNotExist = redis.Nil

//go:generate mockgen -source=./resume.go -package=cachemocks -destination=mocks/resume.mock.go ResumeCache
type ResumeCache interface {
	Get(ctx context.Context, uid int64) (domain.ResumeDetails, error)
	Set(ctx context.Context, uid int64, details domain.ResumeDetails) error
}

type ResumeECache struct {
	cache ecache.Cache
}

// NewResumeECache 注意缓存前缀
// 本地缓存层是保存失败之后找回数据的最后手段，所以不设置过期时间
func NewResumeECache(c ecache.Cache) ResumeCache {
	return &ResumeECache{
		cache: &ecache.NamespaceCache{
			Namespace: "profile:",
			C:         c,
		},
	}
}

func (c *ResumeECache) Get(ctx context.Context, uid int64) (domain.ResumeDetails, error) {
	var d domain.ResumeDetails
	err := c.cache.Get(ctx, c.key(uid)).JSONScan(&d)
	return d, err
}

func (c *ResumeECache) Set(ctx context.Context, uid int64, details domain.ResumeDetails) error {
	data, err := json.Marshal(details)
	if err != nil {
		return err
	}
	return c.cache.Set(ctx, c.key(uid), data, 0)
}

func (c *ResumeECache) key(uid int64) string {
	return fmt.Sprintf("resume:%d", uid)
}
