package notifications

import (
	"sync"

	"aura-service/internal/app/contracts"
)

// Registry tracks which connection currently belongs to which user, plus
// explicit group membership. A user has at most one live connection; a
// reconnect simply overwrites the previous mapping (last write wins).
type Registry struct {
	mu          sync.RWMutex
	connections map[string]string              // userID -> connectionID
	groups      map[string]map[string]struct{} // groupName -> set of connectionIDs
}

func NewRegistry() *Registry {
	return &Registry{
		connections: make(map[string]string),
		groups:      make(map[string]map[string]struct{}),
	}
}

var _ contracts.NotificationRegistry = (*Registry)(nil)

func (r *Registry) OnConnect(userID, connectionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.connections[userID] = connectionID
}

// OnDisconnect removes the mapping only when the stored connection still is
// the one that disconnected. A stale disconnect arriving after a reconnect
// must not evict the fresh connection.
func (r *Registry) OnDisconnect(userID, connectionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if current, ok := r.connections[userID]; ok && current == connectionID {
		delete(r.connections, userID)
	}

	for groupName, members := range r.groups {
		delete(members, connectionID)
		if len(members) == 0 {
			delete(r.groups, groupName)
		}
	}
}

func (r *Registry) JoinGroup(groupName, connectionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.groups[groupName] == nil {
		r.groups[groupName] = make(map[string]struct{})
	}
	r.groups[groupName][connectionID] = struct{}{}
}

func (r *Registry) LeaveGroup(groupName, connectionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if members, ok := r.groups[groupName]; ok {
		delete(members, connectionID)
		if len(members) == 0 {
			delete(r.groups, groupName)
		}
	}
}

func (r *Registry) Lookup(userID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	connectionID, ok := r.connections[userID]
	return connectionID, ok
}

func (r *Registry) GroupMembers(groupName string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := make([]string, 0, len(r.groups[groupName]))
	for connectionID := range r.groups[groupName] {
		members = append(members, connectionID)
	}
	return members
}
