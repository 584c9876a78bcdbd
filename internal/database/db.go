package database

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/safar/go-catalog-store/internal/models"
)

const maxIDAttempts = 16

// DB holds the users, products and orders tables. Identifiers handed out by
// NextID are remembered for the lifetime of the DB and never reissued.
type DB struct {
	mu sync.RWMutex

	Users    *Table[models.User]
	Products *Table[models.Product]
	Orders   *Table[models.Order]

	issued   map[string]struct{}
	newToken func() (string, error)
	now      func() time.Time
}

type Option func(*DB)

// WithTokenSource replaces the random identifier source.
func WithTokenSource(fn func() (string, error)) Option {
	return func(db *DB) {
		db.newToken = fn
	}
}

func WithClock(fn func() time.Time) Option {
	return func(db *DB) {
		db.now = fn
	}
}

func New(opts ...Option) *DB {
	db := &DB{
		Users:    NewTable("users", func(u *models.User) string { return u.ID }),
		Products: NewTable("products", func(p *models.Product) string { return p.ID }),
		Orders:   NewTable("orders", func(o *models.Order) string { return o.ID }),
		issued:   make(map[string]struct{}),
		newToken: randomToken,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(db)
	}

	return db
}

// NextID returns a fresh 8-character identifier. Must be called inside a
// write transaction.
func (db *DB) NextID() (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id, err := db.newToken()
		if err != nil {
			return "", fmt.Errorf("generate id: %w", err)
		}
		if _, taken := db.issued[id]; taken {
			continue
		}
		db.issued[id] = struct{}{}
		return id, nil
	}

	return "", fmt.Errorf("generate id: no unique id after %d attempts", maxIDAttempts)
}

func (db *DB) Now() time.Time {
	return db.now()
}

// randomToken renders the first 32 random bits of a v4 UUID as uppercase hex.
func randomToken() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return strings.ToUpper(id.String()[:8]), nil
}
