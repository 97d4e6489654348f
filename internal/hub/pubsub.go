package hub

import (
	"context"
	"encoding/json"

	"hosteldesk/backend/internal/config"
	"hosteldesk/backend/internal/models"
)

// StartPubSubListener starts a goroutine that relays change events from
// Redis Pub/Sub into the hub's broadcast channel. Going through Redis,
// rather than calling the hub directly, means every server instance
// sees writes made by any of them.
func (m *ManagerService) StartPubSubListener() {
	if m.Storage == nil || m.Storage.Redis == nil {
		m.log.Warn("hub: no Redis client, change feed disabled")
		return
	}

	go func() {
		ctx := context.Background()
		pubsub := m.Storage.Redis.Subscribe(ctx, config.EventChannel)
		defer pubsub.Close()

		for msg := range pubsub.Channel() {
			var event models.Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				m.log.Errorf("hub: unparsable event on %s: %v", config.EventChannel, err)
				continue
			}
			m.BroadcastCh <- event
		}
	}()
}
