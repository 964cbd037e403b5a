package notifications

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestHub_SendToUserOffline(t *testing.T) {
	hub := NewHub(NewRegistry(), zap.NewNop())

	err := hub.SendToUser(context.Background(), "nobody", "diagnosis-verified", map[string]string{"k": "v"})

	assert.NoError(t, err, "an offline user is logged, not an error")
}

func TestHub_SendToUserDeliversNotificationEnvelope(t *testing.T) {
	hub := NewHub(NewRegistry(), zap.NewNop())

	c := &client{ConnectionID: "conn-1", UserID: "user-1", Send: make(chan []byte, 1)}
	hub.register(c)

	err := hub.SendToUser(context.Background(), "user-1", "analysis-completed", map[string]string{"examination_id": "exam-1"})
	assert.NoError(t, err)

	var notification Notification
	assert.NoError(t, json.Unmarshal(<-c.Send, &notification))
	assert.Equal(t, "analysis-completed", notification.Event)
	assert.False(t, notification.Timestamp.IsZero())
}

func TestHub_SendToGroupSkipsFullBuffers(t *testing.T) {
	hub := NewHub(NewRegistry(), zap.NewNop())

	full := &client{ConnectionID: "conn-1", UserID: "user-1", Send: make(chan []byte)}
	open := &client{ConnectionID: "conn-2", UserID: "user-2", Send: make(chan []byte, 1)}
	hub.register(full)
	hub.register(open)
	hub.registry.JoinGroup("Clinic_c1", "conn-1")
	hub.registry.JoinGroup("Clinic_c1", "conn-2")

	err := hub.SendToGroup(context.Background(), "Clinic_c1", "analysis-completed", nil)

	assert.NoError(t, err)
	assert.Len(t, open.Send, 1, "the open buffer still receives despite the full one")
}

// Disconnects racing pushes must never reach a closed send channel.
func TestHub_ConcurrentSendAndDisconnect(t *testing.T) {
	hub := NewHub(NewRegistry(), zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		userID := fmt.Sprintf("user-%d", i)
		c := &client{
			ConnectionID: fmt.Sprintf("conn-%d", i),
			UserID:       userID,
			Send:         make(chan []byte, 1),
		}
		hub.register(c)

		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				assert.NotPanics(t, func() {
					hub.SendToUser(context.Background(), userID, "analysis-completed", nil)
				})
			}
		}()
		go func() {
			defer wg.Done()
			hub.unregister(c)
		}()
	}
	wg.Wait()
}
