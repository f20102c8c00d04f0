package store

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func setupTestRedis(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	s := NewRedisStore(&redis.Options{Addr: server.Addr()}, "roamline")

	t.Cleanup(func() { s.Close() })

	return s, server
}

func TestRedisStore(t *testing.T) {
	t.Run("should ping the server", func(t *testing.T) {
		s, _ := setupTestRedis(t)

		if err := s.Ping(); err != nil {
			t.Fatalf("wanted: nil\ngot: %v", err)
		}
	})

	t.Run("should report absence for an unknown key", func(t *testing.T) {
		s, _ := setupTestRedis(t)

		_, ok, err := s.Read("leads")
		if err != nil {
			t.Fatalf("wanted: nil\ngot: %v", err)
		}
		if ok {
			t.Fatalf("wanted absent key")
		}
	})

	t.Run("should namespace keys with the prefix", func(t *testing.T) {
		s, server := setupTestRedis(t)

		if err := s.Write("leads", `{"data":[]}`); err != nil {
			t.Fatalf("wanted: nil\ngot: %v", err)
		}

		if !server.Exists("roamline:leads") {
			t.Fatalf("wanted key roamline:leads to exist in redis")
		}

		got, ok, err := s.Read("leads")
		if err != nil {
			t.Fatalf("wanted: nil\ngot: %v", err)
		}
		if !ok || got != `{"data":[]}` {
			t.Fatalf("wanted: %q\ngot: %q (present: %v)", `{"data":[]}`, got, ok)
		}
	})

	t.Run("should remove keys", func(t *testing.T) {
		s, server := setupTestRedis(t)

		s.Write("leads", "x")
		if err := s.Remove("leads"); err != nil {
			t.Fatalf("wanted: nil\ngot: %v", err)
		}

		if server.Exists("roamline:leads") {
			t.Fatalf("wanted key to be gone from redis")
		}
	})

	t.Run("should surface connectivity failures", func(t *testing.T) {
		s, server := setupTestRedis(t)

		server.Close()

		if err := s.Write("leads", "x"); err == nil {
			t.Fatalf("wanted a write error after the server went away")
		}
		if _, _, err := s.Read("leads"); err == nil {
			t.Fatalf("wanted a read error after the server went away")
		}
	})
}
