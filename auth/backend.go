package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oru-pavam-nair/BJPMission2025-sub002/models"
)

// mongoBackend keeps sessions in the sessions collection. The TTL index
// created at startup evicts records after 24 hours on its own; the store
// still checks the window so a not-yet-evicted record cannot slip through.
type mongoBackend struct {
	col *mongo.Collection
}

// NewMongoBackend wraps a Mongo database as a session backend.
func NewMongoBackend(db *mongo.Database) Backend {
	return &mongoBackend{col: db.Collection("sessions")}
}

type sessionDoc struct {
	models.Session `bson:",inline"`
	CreatedAt      time.Time `bson:"created_at"`
}

func (b *mongoBackend) Put(ctx context.Context, s models.Session) error {
	_, err := b.col.InsertOne(ctx, sessionDoc{
		Session:   s,
		CreatedAt: time.UnixMilli(s.LoginTime),
	})
	return err
}

func (b *mongoBackend) Get(ctx context.Context, token string) (models.Session, bool, error) {
	var doc sessionDoc
	err := b.col.FindOne(ctx, bson.M{"token": token}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Session{}, false, nil
	}
	if err != nil {
		return models.Session{}, false, err
	}
	return doc.Session, true, nil
}

func (b *mongoBackend) Delete(ctx context.Context, token string) error {
	_, err := b.col.DeleteOne(ctx, bson.M{"token": token})
	return err
}

// memoryBackend is used in tests and as a degraded mode when Mongo is not
// configured. Sessions then only survive as long as the process.
type memoryBackend struct {
	mu       sync.Mutex
	sessions map[string]models.Session
}

// NewMemoryBackend returns an in-process session backend.
func NewMemoryBackend() Backend {
	return &memoryBackend{sessions: make(map[string]models.Session)}
}

func (b *memoryBackend) Put(_ context.Context, s models.Session) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sessions[s.Token] = s
	return nil
}

func (b *memoryBackend) Get(_ context.Context, token string) (models.Session, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.sessions[token]
	return s, ok, nil
}

func (b *memoryBackend) Delete(_ context.Context, token string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.sessions, token)
	return nil
}
