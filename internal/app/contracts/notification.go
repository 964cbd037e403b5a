package contracts

import "context"

// NotificationRegistry maps users to their live connections. A user has at
// most one active connection; reconnecting replaces the previous one.
type NotificationRegistry interface {
	OnConnect(userID, connectionID string)
	OnDisconnect(userID, connectionID string)
	JoinGroup(groupName, connectionID string)
	LeaveGroup(groupName, connectionID string)
	Lookup(userID string) (string, bool)
	GroupMembers(groupName string) []string
}

// NotificationPusher delivers a named payload to a single user or to every
// member of a group. Delivery to an offline user is not an error.
type NotificationPusher interface {
	SendToUser(ctx context.Context, userID, eventName string, payload interface{}) error
	SendToGroup(ctx context.Context, groupName, eventName string, payload interface{}) error
}
