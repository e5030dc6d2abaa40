package service

import (
	"context"
)

// PushSender defines the interface for push notification delivery.
// Delivery is best effort; a failed push never fails the triggering operation.
type PushSender interface {
	// SendToUserTopic sends a push notification to the per-user topic the
	// client app subscribes to after login.
	SendToUserTopic(ctx context.Context, userTopic, title, body string, data map[string]string) error
}
