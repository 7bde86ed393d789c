package logic

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/privops/elevate/database"
	"golang.org/x/exp/slog"
)

const serverUUIDKey = "serveruuid"

type serverID struct {
	UUID string `json:"uuid"`
}

var serverUUID string

// InitServerUUID - loads the server's persistent identifier from the
// database, generating and storing one on first boot
func InitServerUUID() error {
	record, err := database.FetchRecord(database.SERVER_UUID_TABLE_NAME, serverUUIDKey)
	if err != nil && !database.IsEmptyRecord(err) {
		return err
	}
	if err == nil {
		var id serverID
		if err := json.Unmarshal([]byte(record), &id); err == nil && id.UUID != "" {
			serverUUID = id.UUID
			return nil
		}
	}
	id := serverID{UUID: uuid.NewString()}
	value, err := json.Marshal(&id)
	if err != nil {
		return err
	}
	if err := database.Insert(serverUUIDKey, string(value), database.SERVER_UUID_TABLE_NAME); err != nil {
		return err
	}
	serverUUID = id.UUID
	slog.Info("generated new server id", "uuid", serverUUID)
	return nil
}

// GetServerUUID - the persistent identifier loaded at startup
func GetServerUUID() string {
	return serverUUID
}
