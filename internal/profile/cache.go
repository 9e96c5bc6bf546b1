package profile

import (
	"context"
	"strconv"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const existenceKeyPrefix = "profile-exists||"

// ExistenceCache keeps the "has a profile" answer per account for a short time,
// as the profile gate asks it on almost every request.
type ExistenceCache struct {
	cache      *freecache.Cache
	ttlSeconds int
}

// NewExistenceCache creates a cache of the given size in bytes (freecache minimum is 512KB).
func NewExistenceCache(sizeBytes, ttlSeconds int) *ExistenceCache {
	return &ExistenceCache{
		cache:      freecache.NewCache(sizeBytes),
		ttlSeconds: ttlSeconds,
	}
}

func existenceKey(accountID int) []byte {
	return []byte(existenceKeyPrefix + strconv.Itoa(accountID))
}

// Get returns the cached answer and whether there was one.
func (c *ExistenceCache) Get(accountID int) (exists bool, found bool) {
	val, err := c.cache.Get(existenceKey(accountID))
	if err != nil {
		return false, false
	}
	return len(val) == 1 && val[0] == 1, true
}

func (c *ExistenceCache) Set(accountID int, exists bool) {
	val := []byte{0}
	if exists {
		val[0] = 1
	}
	if err := c.cache.Set(existenceKey(accountID), val, c.ttlSeconds); err != nil {
		log.Warnf("profile existence cache set [%d]: %s", accountID, err)
	}
}

func (c *ExistenceCache) Invalidate(accountID int) {
	c.cache.Del(existenceKey(accountID))
}

// ClearAccount drops the cached answer of a deleted account.
func (c *ExistenceCache) ClearAccount(_ context.Context, accountID int) error {
	c.Invalidate(accountID)
	return nil
}
