package user

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/DietDiary_Go/internal/domain"
)

// userCache keeps recent username lookups in an expiring LRU.
type userCache struct {
	lru *expirable.LRU[string, domain.User]
}

func newUserCache(size int, ttl time.Duration) *userCache {
	return &userCache{
		lru: expirable.NewLRU[string, domain.User](size, nil, ttl),
	}
}

func (c *userCache) Get(username string) (*domain.User, bool) {
	u, ok := c.lru.Get(username)
	if !ok {
		return nil, false
	}
	return &u, true
}

func (c *userCache) Set(u *domain.User) {
	c.lru.Add(u.Username, *u)
}
