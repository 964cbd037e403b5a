package notifications

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_ReconnectOverwritesMapping(t *testing.T) {
	registry := NewRegistry()

	registry.OnConnect("user-1", "conn-a")
	registry.OnConnect("user-1", "conn-b")

	connectionID, ok := registry.Lookup("user-1")
	assert.True(t, ok)
	assert.Equal(t, "conn-b", connectionID, "last connection should win")
}

func TestRegistry_StaleDisconnectKeepsFreshConnection(t *testing.T) {
	registry := NewRegistry()

	registry.OnConnect("user-1", "conn-a")
	registry.OnConnect("user-1", "conn-b")

	// The old connection's close arrives after the reconnect.
	registry.OnDisconnect("user-1", "conn-a")

	connectionID, ok := registry.Lookup("user-1")
	assert.True(t, ok, "fresh connection must survive the stale disconnect")
	assert.Equal(t, "conn-b", connectionID)

	registry.OnDisconnect("user-1", "conn-b")

	_, ok = registry.Lookup("user-1")
	assert.False(t, ok)
}

func TestRegistry_GroupMembership(t *testing.T) {
	registry := NewRegistry()

	registry.OnConnect("user-1", "conn-a")
	registry.OnConnect("user-2", "conn-b")

	registry.JoinGroup("Clinic_c1", "conn-a")
	registry.JoinGroup("Clinic_c1", "conn-b")
	registry.JoinGroup("Clinic_c2", "conn-b")

	assert.ElementsMatch(t, []string{"conn-a", "conn-b"}, registry.GroupMembers("Clinic_c1"))
	assert.ElementsMatch(t, []string{"conn-b"}, registry.GroupMembers("Clinic_c2"))

	registry.LeaveGroup("Clinic_c1", "conn-a")
	assert.ElementsMatch(t, []string{"conn-b"}, registry.GroupMembers("Clinic_c1"))

	// Joining the same group twice must not duplicate the member.
	registry.JoinGroup("Clinic_c1", "conn-b")
	assert.Len(t, registry.GroupMembers("Clinic_c1"), 1)
}

func TestRegistry_DisconnectRemovesFromAllGroups(t *testing.T) {
	registry := NewRegistry()

	registry.OnConnect("user-1", "conn-a")
	registry.JoinGroup("Clinic_c1", "conn-a")
	registry.JoinGroup("Clinic_c2", "conn-a")

	registry.OnDisconnect("user-1", "conn-a")

	assert.Empty(t, registry.GroupMembers("Clinic_c1"))
	assert.Empty(t, registry.GroupMembers("Clinic_c2"))
}

func TestRegistry_UnknownLookups(t *testing.T) {
	registry := NewRegistry()

	_, ok := registry.Lookup("nobody")
	assert.False(t, ok)
	assert.Empty(t, registry.GroupMembers("Clinic_missing"))

	// Leaving a group that was never joined is a no-op.
	registry.LeaveGroup("Clinic_missing", "conn-a")
	registry.OnDisconnect("nobody", "conn-a")
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	registry := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			userID := fmt.Sprintf("user-%d", i%10)
			connectionID := fmt.Sprintf("conn-%d", i)
			registry.OnConnect(userID, connectionID)
			registry.JoinGroup("Clinic_c1", connectionID)
			registry.Lookup(userID)
			registry.GroupMembers("Clinic_c1")
			registry.LeaveGroup("Clinic_c1", connectionID)
			registry.OnDisconnect(userID, connectionID)
		}(i)
	}
	wg.Wait()
}
