// Package hub fans entity-change events out to connected clients. The
// store publishes every persisted write to a Redis channel; the hub
// subscribes and pushes the events to each registered client, so warden
// dashboards re-render without polling.
package hub

import (
	"github.com/sirupsen/logrus"

	"hosteldesk/backend/internal/models"
	"hosteldesk/backend/internal/storage"
)

// ManagerService owns the client registry and the broadcast loop.
type ManagerService struct {
	Clients map[string]Client

	RegisterCh   chan Client
	UnregisterCh chan Client
	BroadcastCh  chan models.Event

	Storage *storage.Service
	log     *logrus.Logger
}

// NewManagerService creates a hub bound to the store's Redis client.
func NewManagerService(s *storage.Service, log *logrus.Logger) *ManagerService {
	return &ManagerService{
		Clients:      make(map[string]Client),
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		BroadcastCh:  make(chan models.Event, 16),
		Storage:      s,
		log:          log,
	}
}

// Run is the hub's dispatcher loop. One goroutine owns the Clients map;
// registration, removal and broadcast all serialize through it.
func (m *ManagerService) Run() {
	m.StartPubSubListener()

	for {
		select {
		case client := <-m.RegisterCh:
			if old, ok := m.Clients[client.GetUserID()]; ok {
				old.Close()
			}
			m.Clients[client.GetUserID()] = client
			m.log.Infof("hub: client %s connected (%d total)", client.GetUserID(), len(m.Clients))

		case client := <-m.UnregisterCh:
			if current, ok := m.Clients[client.GetUserID()]; ok && current == client {
				delete(m.Clients, client.GetUserID())
				client.Close()
				m.log.Infof("hub: client %s disconnected (%d total)", client.GetUserID(), len(m.Clients))
			}

		case event := <-m.BroadcastCh:
			m.broadcast(event)
		}
	}
}

// broadcast delivers one event to every client. A client that cannot
// keep up is dropped rather than allowed to stall the loop.
func (m *ManagerService) broadcast(event models.Event) {
	for id, client := range m.Clients {
		select {
		case client.GetSendChannel() <- event:
		default:
			m.log.Warnf("hub: client %s is not draining, dropping connection", id)
			delete(m.Clients, id)
			client.Close()
		}
	}
}
