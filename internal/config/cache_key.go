package config

import "fmt"

const cacheKeyPrefix = "acad"

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// BobotNilaiKey returns the cache key for the full grade-weight table.
func (r *CacheKeyStruct) BobotNilaiKey() string {
	return fmt.Sprintf("%s:bobot_nilai", cacheKeyPrefix)
}

var CacheKey = NewCacheKeyStruct()
