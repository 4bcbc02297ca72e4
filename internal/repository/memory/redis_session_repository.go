package memory

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"crowlands-be/pkg/store"

	"github.com/redis/go-redis/v9"
)

const sessionTTL = 1 * time.Hour

// RedisSessionRepository keeps chat sessions in Redis so they survive
// process restarts and are shared across replicas.
type RedisSessionRepository struct {
	rdb *redis.Client
}

func NewRedisSessionRepository(rdb *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{rdb: rdb}
}

func sessionKey(id string) string {
	return "session:" + id
}

func (r *RedisSessionRepository) Save(session *store.Session) {
	data, err := json.Marshal(session)
	if err != nil {
		log.Printf("Error marshalling session %s: %v", session.ID, err)
		return
	}
	if err := r.rdb.Set(context.Background(), sessionKey(session.ID), data, sessionTTL).Err(); err != nil {
		log.Printf("Error saving session %s to redis: %v", session.ID, err)
	}
}

func (r *RedisSessionRepository) Get(sessionID string) (*store.Session, bool) {
	data, err := r.rdb.Get(context.Background(), sessionKey(sessionID)).Bytes()
	if err != nil {
		return nil, false
	}
	var session store.Session
	if err := json.Unmarshal(data, &session); err != nil {
		log.Printf("Error unmarshalling session %s: %v", sessionID, err)
		return nil, false
	}
	return &session, true
}

func (r *RedisSessionRepository) Delete(sessionID string) {
	if err := r.rdb.Del(context.Background(), sessionKey(sessionID)).Err(); err != nil {
		log.Printf("Error deleting session %s from redis: %v", sessionID, err)
	}
}
