// Package session owns the per-user state: an isolated in-memory entity store
// plus the navigation/selection pointers that gate the screens. Every store
// lives exactly as long as its session; nothing is shared between sessions or
// persisted anywhere.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/PulchraScientia/BDAstudio-demo2/internal/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// User is the demo identity attached to every session.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

var defaultUser = User{
	Name:  "Demo User",
	Email: "demo@example.com",
	Role:  "Data Analyst",
}

// Session is one user's isolated workspace of state. Requests for the same
// session are serialized by the middleware, so nothing below needs locking.
type Session struct {
	ID        string
	User      User
	DB        *gorm.DB
	Nav       *Navigation
	CreatedAt time.Time

	mu sync.Mutex
}

func newSession(id string) (*Session, error) {
	db, err := openStore(id)
	if err != nil {
		return nil, err
	}
	return &Session{
		ID:        id,
		User:      defaultUser,
		DB:        db,
		Nav:       NewNavigation(),
		CreatedAt: time.Now(),
	}, nil
}

// openStore opens the session's private in-memory database and migrates the
// entity schema. cache=shared keeps the database alive across the pool's
// connections; the name keeps sessions apart.
func openStore(id string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:session_%s?mode=memory&cache=shared", id)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	err = db.AutoMigrate(
		&entity.Workspace{},
		&entity.Dataset{},
		&entity.Material{},
		&entity.Experiment{},
		&entity.Assistant{},
		&entity.ChatSession{},
		&entity.ChatMessage{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate session store: %w", err)
	}
	return db, nil
}

// Lock serializes requests within one session; cross-session requests never
// contend.
func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// Reset discards the entire store and selection state, returning the session
// to its initial empty shape.
func (s *Session) Reset() error {
	if sqlDB, err := s.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	db, err := openStore(s.ID + "_" + fmt.Sprint(time.Now().UnixNano()))
	if err != nil {
		return err
	}
	s.DB = db
	s.Nav = NewNavigation()
	return nil
}

// Close releases the session's database.
func (s *Session) Close() {
	if sqlDB, err := s.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
