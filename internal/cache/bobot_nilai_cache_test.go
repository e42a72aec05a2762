package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stemsi/acad-service/internal/model"
)

func unreachableClient(t *testing.T) *redis.Client {
	t.Helper()
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 200 * time.Millisecond,
	})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestGetSurfacesConnectionErrors(t *testing.T) {
	c := NewBobotNilaiCache(unreachableClient(t), time.Minute)

	list, ok, err := c.Get(context.Background())
	if err == nil {
		t.Fatal("expected error from unreachable redis")
	}
	if ok || list != nil {
		t.Fatalf("expected miss on error, got ok=%v list=%v", ok, list)
	}
}

func TestSetSurfacesConnectionErrors(t *testing.T) {
	c := NewBobotNilaiCache(unreachableClient(t), time.Minute)

	err := c.Set(context.Background(), []model.BobotNilai{{Nilai: "A", Bobot: 4}})
	if err == nil {
		t.Fatal("expected error from unreachable redis")
	}
}
