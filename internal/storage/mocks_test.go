package storage_test

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"

	"hosteldesk/backend/internal/storage"
)

// memBackend is a working in-memory Backend for round-trip tests.
type memBackend struct {
	data map[string][]byte
}

func newMemBackend() *memBackend {
	return &memBackend{data: make(map[string][]byte)}
}

func (b *memBackend) Load(_ context.Context, namespace string) ([]byte, bool, error) {
	d, ok := b.data[namespace]
	return d, ok, nil
}

func (b *memBackend) Save(_ context.Context, namespace string, data []byte) error {
	b.data[namespace] = data
	return nil
}

// MockBackend asserts on persistence calls and can be told to fail.
type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) Load(_ context.Context, namespace string) ([]byte, bool, error) {
	args := m.Called(namespace)
	data, _ := args.Get(0).([]byte)
	return data, args.Bool(1), args.Error(2)
}

func (m *MockBackend) Save(_ context.Context, namespace string, data []byte) error {
	args := m.Called(namespace, data)
	return args.Error(0)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestService(backend storage.Backend) *storage.Service {
	return storage.NewService(backend, nil, quietLogger())
}
