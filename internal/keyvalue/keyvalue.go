// Package keyvalue is the persistence adapter: whole collections round-trip
// as JSON values under fixed keys. Reads fall back to the caller's default on
// missing or corrupt values, writes are synchronous and best-effort.
package keyvalue

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/GoldeNerd2/Aicord/internal/models"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "modernc.org/sqlite"
)

type Store struct {
	sugar         *zap.SugaredLogger
	selfContained bool
	db            *sql.DB
	redisClient   *redis.Client
	redisCtx      context.Context
}

func Setup(sugar *zap.SugaredLogger, cfg *models.ConfigFile) (*Store, error) {
	s := &Store{
		sugar:         sugar,
		selfContained: cfg.SelfContained,
		redisCtx:      context.Background(),
	}

	if cfg.SelfContained {
		dbFile := cfg.DbFile
		if dbFile == "" {
			dbFile = "./aicord.db"
		}

		db, err := sql.Open("sqlite", dbFile)
		if err != nil {
			return nil, err
		}

		// there can be sqlite busy errors if this is not set to 1
		db.SetMaxOpenConns(1)

		err = setPragmaValues(db)
		if err != nil {
			return nil, err
		}

		_, err = db.Exec(`
				CREATE TABLE IF NOT EXISTS collections (
					name TEXT PRIMARY KEY,
					value TEXT NOT NULL
				);
			`)
		if err != nil {
			return nil, err
		}

		s.db = db
		return s, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	err := rdb.Ping(s.redisCtx).Err()
	if err != nil {
		return nil, err
	}

	s.redisClient = rdb
	return s, nil
}

func setPragmaValues(db *sql.DB) error {
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return err
	}

	// these next 2 extremely speed up performance of sqlite
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return err
	}

	if _, err := db.Exec("PRAGMA synchronous = normal"); err != nil {
		return err
	}

	return nil
}

// Load reads the collection stored under key into out. It returns false and
// leaves out untouched when the key is absent or the stored value doesn't
// parse; corruption is logged, never propagated.
func (s *Store) Load(key string, out any) bool {
	raw, ok, err := s.get(key)
	if err != nil {
		s.sugar.Errorf("Reading key [%s] failed: %v", key, err)
		return false
	}
	if !ok {
		return false
	}

	err = json.Unmarshal([]byte(raw), out)
	if err != nil {
		s.sugar.Warnf("Stored value of key [%s] is corrupt, using fallback: %v", key, err)
		return false
	}
	return true
}

// Save writes the collection through synchronously. Failures are logged and
// swallowed, this is a cache-of-record, not a transactional log.
func (s *Store) Save(key string, value any) {
	bytes, err := json.Marshal(value)
	if err != nil {
		s.sugar.Errorf("Marshaling value of key [%s] failed: %v", key, err)
		return
	}

	err = s.set(key, string(bytes))
	if err != nil {
		s.sugar.Errorf("Writing key [%s] failed: %v", key, err)
	}
}

// Delete removes the key. Best-effort like Save.
func (s *Store) Delete(key string) {
	var err error
	if s.selfContained {
		_, err = s.db.Exec("DELETE FROM collections WHERE name = ?", key)
	} else {
		err = s.redisClient.Del(s.redisCtx, key).Err()
	}
	if err != nil {
		s.sugar.Errorf("Deleting key [%s] failed: %v", key, err)
	}
}

func (s *Store) Close() error {
	if s.selfContained {
		return s.db.Close()
	}
	return s.redisClient.Close()
}

func (s *Store) get(key string) (string, bool, error) {
	if s.selfContained {
		s.sugar.Debugf("Getting value of key [%s] from sqlite", key)

		var value string
		err := s.db.QueryRow("SELECT value FROM collections WHERE name = ?", key).Scan(&value)
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		} else if err != nil {
			return "", false, err
		}
		return value, true, nil
	}

	s.sugar.Debugf("Getting value of key [%s] from redis", key)

	value, err := s.redisClient.Get(s.redisCtx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	} else if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *Store) set(key string, value string) error {
	if s.selfContained {
		s.sugar.Debugf("Setting value of key [%s] in sqlite", key)

		_, err := s.db.Exec(`
				INSERT INTO collections (name, value) VALUES (?, ?)
				ON CONFLICT(name) DO UPDATE SET value = excluded.value
			`, key, value)
		return err
	}

	s.sugar.Debugf("Setting value of key [%s] in redis", key)

	err := s.redisClient.Set(s.redisCtx, key, value, 0).Err()
	if err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}
