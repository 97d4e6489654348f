package hub_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"hosteldesk/backend/internal/hub"
	"hosteldesk/backend/internal/models"
	"hosteldesk/backend/internal/storage"
)

type memBackend struct {
	data map[string][]byte
}

func (b *memBackend) Load(_ context.Context, namespace string) ([]byte, bool, error) {
	d, ok := b.data[namespace]
	return d, ok, nil
}

func (b *memBackend) Save(_ context.Context, namespace string, data []byte) error {
	b.data[namespace] = data
	return nil
}

// mockClient is a test double for the Client interface with an
// inspectable delivery channel.
type mockClient struct {
	userID string
	send   chan models.Event
	closed chan struct{}
}

func newMockClient(userID string, buffer int) *mockClient {
	return &mockClient{
		userID: userID,
		send:   make(chan models.Event, buffer),
		closed: make(chan struct{}),
	}
}

func (c *mockClient) GetUserID() string                   { return c.userID }
func (c *mockClient) GetSendChannel() chan<- models.Event { return c.send }
func (c *mockClient) Run()                                {}

func (c *mockClient) Close() {
	select {
	case <-c.closed:
	default:
		close(c.closed)
	}
}

func (c *mockClient) isClosed() bool {
	select {
	case <-c.closed:
		return true
	default:
		return false
	}
}

func newTestHub() *hub.ManagerService {
	log := logrus.New()
	log.SetOutput(io.Discard)
	store := storage.NewService(&memBackend{data: make(map[string][]byte)}, nil, log)
	return hub.NewManagerService(store, log)
}

func TestManager_RegisterAndUnregister(t *testing.T) {
	h := newTestHub()
	client := newMockClient("192411045", 1)

	go h.Run()

	h.RegisterCh <- client
	time.Sleep(100 * time.Millisecond)
	assert.Contains(t, h.Clients, "192411045")

	h.UnregisterCh <- client
	time.Sleep(100 * time.Millisecond)
	assert.NotContains(t, h.Clients, "192411045")
	assert.True(t, client.isClosed())
}

func TestManager_ReconnectReplacesOldClient(t *testing.T) {
	h := newTestHub()
	first := newMockClient("192411045", 1)
	second := newMockClient("192411045", 1)

	go h.Run()

	h.RegisterCh <- first
	h.RegisterCh <- second
	time.Sleep(100 * time.Millisecond)

	assert.True(t, first.isClosed())
	assert.Len(t, h.Clients, 1)

	// Unregistering the stale connection must not evict the live one.
	h.UnregisterCh <- first
	time.Sleep(100 * time.Millisecond)
	assert.Contains(t, h.Clients, "192411045")
	assert.False(t, second.isClosed())
}

func TestManager_BroadcastDeliversToAllClients(t *testing.T) {
	h := newTestHub()
	clientA := newMockClient("192411045", 1)
	clientB := newMockClient("W01", 1)

	go h.Run()

	h.RegisterCh <- clientA
	h.RegisterCh <- clientB
	time.Sleep(100 * time.Millisecond)

	event := models.Event{Type: models.EventComplaintCreated, EntityID: "C01", Summary: "Leaking tap"}
	h.BroadcastCh <- event

	for _, c := range []*mockClient{clientA, clientB} {
		select {
		case got := <-c.send:
			assert.Equal(t, event.EntityID, got.EntityID)
		case <-time.After(time.Second):
			t.Fatalf("client %s never received the event", c.userID)
		}
	}
}

func TestManager_DropsClientThatDoesNotDrain(t *testing.T) {
	h := newTestHub()
	stuck := newMockClient("192411045", 0)

	go h.Run()

	h.RegisterCh <- stuck
	time.Sleep(100 * time.Millisecond)

	h.BroadcastCh <- models.Event{Type: models.EventComplaintUpdated, EntityID: "C01"}
	time.Sleep(100 * time.Millisecond)

	assert.NotContains(t, h.Clients, "192411045")
	assert.True(t, stuck.isClosed())
}
