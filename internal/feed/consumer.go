// Package feed is the stream-transport collaborator: it owns the broker
// subscription, reconnect policy and delivery of raw payloads to the
// pipeline. Delivery is at-least-once and may be out of order; the core
// tolerates both.
package feed

import (
	"fmt"
	"log"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/MEMAtest/railway/internal/config"
)

// Handler receives one raw broker payload. It must not block on I/O; the
// pipeline's work is purely computational.
type Handler func(payload []byte)

// Consumer subscribes to the topic carrying Darwin messages.
type Consumer struct {
	client mqtt.Client
	topic  string
}

// NewConsumer builds a consumer with automatic reconnect and connect
// retry. Each process gets a unique client identity so the broker treats
// restarts as fresh subscribers.
func NewConsumer(cfg *config.Config, handle Handler) *Consumer {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.BrokerURL)
	opts.SetClientID(fmt.Sprintf("railway-%s", uuid.NewString()[:8]))
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectRetryInterval(cfg.ConnectRetryInterval)
	opts.SetDefaultPublishHandler(func(_ mqtt.Client, msg mqtt.Message) {
		handle(msg.Payload())
	})
	opts.OnConnect = func(client mqtt.Client) {
		token := client.Subscribe(cfg.Topic, 0, nil)
		token.Wait()
		if token.Error() != nil {
			log.Printf("feed subscribe error: %v", token.Error())
			return
		}
		log.Printf("feed subscribed to topic=%s", cfg.Topic)
	}
	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		log.Printf("feed connection lost: %v", err)
	}

	return &Consumer{client: mqtt.NewClient(opts), topic: cfg.Topic}
}

// Start connects to the broker. With connect retry enabled the returned
// error only reflects immediately fatal conditions (e.g. a malformed
// broker URL); transient failures are retried in the background.
func (c *Consumer) Start() error {
	token := c.client.Connect()
	token.Wait()
	return token.Error()
}

// Connected reports whether the broker connection is currently up.
func (c *Consumer) Connected() bool {
	return c.client.IsConnectionOpen()
}

// Close disconnects from the broker, allowing in-flight work to finish.
func (c *Consumer) Close() {
	c.client.Disconnect(250)
}
