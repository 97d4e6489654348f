package storage

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Backend is the durable key-value collaborator. Each namespace holds one
// full JSON snapshot of a collection; writes replace the whole snapshot.
type Backend interface {
	// Load returns the snapshot for the namespace. ok is false when the
	// namespace has never been written.
	Load(ctx context.Context, namespace string) (data []byte, ok bool, err error)
	// Save replaces the snapshot for the namespace.
	Save(ctx context.Context, namespace string, data []byte) error
}

// Snapshot is the PostgreSQL row backing one namespace.
type Snapshot struct {
	Namespace string `gorm:"primaryKey"`
	Data      []byte
	UpdatedAt time.Time
}

// GormBackend persists snapshots through GORM.
type GormBackend struct {
	DB *gorm.DB
}

// NewGormBackend migrates the snapshots table and returns the backend.
func NewGormBackend(db *gorm.DB) (*GormBackend, error) {
	if err := db.AutoMigrate(&Snapshot{}); err != nil {
		return nil, err
	}
	return &GormBackend{DB: db}, nil
}

func (b *GormBackend) Load(ctx context.Context, namespace string) ([]byte, bool, error) {
	var snap Snapshot
	err := b.DB.WithContext(ctx).First(&snap, "namespace = ?", namespace).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return snap.Data, true, nil
}

func (b *GormBackend) Save(ctx context.Context, namespace string, data []byte) error {
	snap := Snapshot{Namespace: namespace, Data: data, UpdatedAt: time.Now()}
	return b.DB.WithContext(ctx).Save(&snap).Error
}
