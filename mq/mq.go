// Package mq publishes elevation lifecycle events to an MQTT broker when one
// is configured. Publishing is fire-and-forget; a broker outage never fails
// or delays an elevation.
package mq

import (
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/privops/elevate/logger"
	"github.com/privops/elevate/servercfg"
)

// MQ_TIMEOUT - timeout in seconds for MQ operations
const MQ_TIMEOUT = 30

// MQ_DISCONNECT - quiesce period in ms for disconnects
const MQ_DISCONNECT = 250

var mqclient mqtt.Client

func setMqOptions(user, password string, opts *mqtt.ClientOptions) {
	broker := servercfg.GetMessageQueueEndpoint()
	opts.AddBroker(broker)
	opts.ClientID = user
	opts.SetUsername(user)
	opts.SetPassword(password)
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectRetryInterval(time.Second << 2)
	opts.SetKeepAlive(time.Minute)
	opts.SetWriteTimeout(time.Minute)
}

// SetupMQTT - creates a connection to the broker; no-op when no broker is
// configured
func SetupMQTT() {
	if !servercfg.IsMessageQueueBackend() {
		return
	}
	opts := mqtt.NewClientOptions()
	setMqOptions(servercfg.GetMqUserName(), servercfg.GetMqPassword(), opts)
	opts.SetOnConnectHandler(func(client mqtt.Client) {
		logger.Log(0, "connected to message queue at", servercfg.GetMessageQueueEndpoint())
	})
	mqclient = mqtt.NewClient(opts)
	if token := mqclient.Connect(); !token.WaitTimeout(MQ_TIMEOUT*time.Second) || token.Error() != nil {
		logger.Log(0, "unable to connect to message queue, events will not be published")
	}
}

// IsConnected - whether the broker connection is live
func IsConnected() bool {
	return mqclient != nil && mqclient.IsConnected()
}

// CloseClient - disconnects the broker connection gracefully
func CloseClient() {
	if mqclient != nil {
		mqclient.Disconnect(MQ_DISCONNECT)
	}
}

func publish(topic string, payload []byte) error {
	if !IsConnected() {
		return nil
	}
	token := mqclient.Publish(topic, 0, false, payload)
	if !token.WaitTimeout(MQ_TIMEOUT*time.Second) || token.Error() != nil {
		return token.Error()
	}
	return nil
}
