package mq

import (
	"encoding/json"

	"github.com/privops/elevate/models"
	"golang.org/x/exp/slog"
)

// PublishElevationEvent - publishes a lifecycle event on the elevation topic.
// Failures are logged and dropped; event delivery is best effort.
func PublishElevationEvent(event models.ElevationEvent) {
	if !IsConnected() {
		return
	}
	payload, err := json.Marshal(&event)
	if err != nil {
		slog.Error("failed to marshal elevation event", "type", event.Type, "error", err)
		return
	}
	if err := publish("elevation/"+event.Type, payload); err != nil {
		slog.Warn("failed to publish elevation event", "type", event.Type, "error", err)
	}
}
