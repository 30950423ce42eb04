package cache

import (
	"context"
	"fmt"

	"github.com/ecodeclub/ecache"
	"github.com/redis/go-redis/v9"
)

var ErrKeyNotExist = redis.Nil

// KeyCache 最后一次上传成功的对象键
// 远端三条更新路径全挂时，这里是之后重建查看链接的最后来源
//
//go:generate mockgen -source=./key.go -package=cachemocks -destination=mocks/key.mock.go KeyCache
type KeyCache interface {
	Set(ctx context.Context, uid int64, key string) error
	Get(ctx context.Context, uid int64) (string, error)
}

type KeyECache struct {
	cache ecache.Cache
}

func NewKeyECache(c ecache.Cache) KeyCache {
	return &KeyECache{
		cache: &ecache.NamespaceCache{
			Namespace: "document:",
			C:         c,
		},
	}
}

func (c *KeyECache) Set(ctx context.Context, uid int64, key string) error {
	return c.cache.Set(ctx, c.key(uid), key, 0)
}

func (c *KeyECache) Get(ctx context.Context, uid int64) (string, error) {
	return c.cache.Get(ctx, c.key(uid)).AsString()
}

func (c *KeyECache) key(uid int64) string {
	return fmt.Sprintf("upload-key:%d", uid)
}
