/*
 * Copyright 2025 Skotrack Devices Pvt. Ltd.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package push

import (
	"fmt"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/skotrack/vmarg/pkg/logger"
	"github.com/skotrack/vmarg/pkg/models"
)

const (
	defaultConnectTimeout    = 4 * time.Second
	defaultReconnectInterval = time.Second
	disconnectQuiesceMillis  = 250
	triggerMailboxSize       = 1
)

// newMQTTClient is swapped out in tests.
var newMQTTClient = mqtt.NewClient

// MQTTConfig holds broker connection settings for the MQTT push channel.
type MQTTConfig struct {
	BrokerURL         string          `json:"broker_url"`
	ConnectTimeout    models.Duration `json:"connect_timeout,omitempty"`
	ReconnectInterval models.Duration `json:"reconnect_interval,omitempty"`
}

// MQTTChannel is the production push channel: one MQTT connection, one
// device topic of the form devices/{id}/apicall subscribed at a time.
type MQTTChannel struct {
	client   mqtt.Client
	log      logger.Logger
	triggers chan string

	mu       sync.Mutex
	deviceID string
	topic    string
}

// NewMQTTChannel connects to the broker and returns the channel. The initial
// connect happens in the background; the client library retries until it
// succeeds and auto-reconnects afterwards.
func NewMQTTChannel(cfg *MQTTConfig, log logger.Logger) (*MQTTChannel, error) {
	if cfg.BrokerURL == "" {
		return nil, fmt.Errorf("%w: broker_url is required", models.ErrValidation)
	}

	connectTimeout := time.Duration(cfg.ConnectTimeout)
	if connectTimeout <= 0 {
		connectTimeout = defaultConnectTimeout
	}

	reconnectInterval := time.Duration(cfg.ReconnectInterval)
	if reconnectInterval <= 0 {
		reconnectInterval = defaultReconnectInterval
	}

	c := &MQTTChannel{
		log:      log,
		triggers: make(chan string, triggerMailboxSize),
	}

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.BrokerURL).
		SetClientID("vmarg-livesync-" + uuid.NewString()[:8]).
		SetConnectTimeout(connectTimeout).
		SetConnectRetry(true).
		SetConnectRetryInterval(reconnectInterval).
		SetAutoReconnect(true).
		SetOnConnectHandler(c.onConnect).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			log.Warn().Err(err).Msg("MQTT connection lost")
		})

	c.client = newMQTTClient(opts)

	if token := c.client.Connect(); token.Error() != nil {
		return nil, fmt.Errorf("%w: mqtt connect: %w", models.ErrNetwork, token.Error())
	}

	return c, nil
}

// Subscribe replaces the active subscription with deviceID's topic.
func (c *MQTTChannel) Subscribe(deviceID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.topic != "" && c.client.IsConnectionOpen() {
		if token := c.client.Unsubscribe(c.topic); token.Wait() && token.Error() != nil {
			c.log.Warn().Err(token.Error()).Str("topic", c.topic).Msg("MQTT unsubscribe failed")
		}
	}

	c.deviceID = deviceID
	c.topic = TopicFor(deviceID)

	// Not connected yet: onConnect will pick up the subscription.
	if !c.client.IsConnectionOpen() {
		return nil
	}

	if token := c.client.Subscribe(c.topic, 0, c.handleMessage); token.Wait() && token.Error() != nil {
		return fmt.Errorf("%w: mqtt subscribe %s: %w", models.ErrNetwork, c.topic, token.Error())
	}

	c.log.Debug().Str("topic", c.topic).Msg("MQTT subscription replaced")

	return nil
}

// Unsubscribe drops the active subscription, if any.
func (c *MQTTChannel) Unsubscribe() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.topic == "" {
		return
	}

	if c.client.IsConnectionOpen() {
		if token := c.client.Unsubscribe(c.topic); token.Wait() && token.Error() != nil {
			c.log.Warn().Err(token.Error()).Str("topic", c.topic).Msg("MQTT unsubscribe failed")
		}
	}

	c.deviceID = ""
	c.topic = ""
}

// Triggers returns the single-slot trigger mailbox.
func (c *MQTTChannel) Triggers() <-chan string {
	return c.triggers
}

// Close tears down the subscription and disconnects from the broker.
func (c *MQTTChannel) Close() {
	c.Unsubscribe()
	c.client.Disconnect(disconnectQuiesceMillis)
}

// onConnect restores the current subscription after initial connect and
// every reconnect.
func (c *MQTTChannel) onConnect(client mqtt.Client) {
	c.mu.Lock()
	topic := c.topic
	c.mu.Unlock()

	c.log.Info().Msg("MQTT connected")

	if topic == "" {
		return
	}

	if token := client.Subscribe(topic, 0, c.handleMessage); token.Wait() && token.Error() != nil {
		c.log.Error().Err(token.Error()).Str("topic", topic).Msg("MQTT resubscribe failed")
	}
}

// handleMessage forwards a refetch trigger for the subscribed device.
// Anything other than the trigger payload on the current topic is ignored.
func (c *MQTTChannel) handleMessage(_ mqtt.Client, msg mqtt.Message) {
	if string(msg.Payload()) != TriggerPayload {
		return
	}

	c.mu.Lock()
	deviceID := c.deviceID
	topic := c.topic
	c.mu.Unlock()

	if msg.Topic() != topic || deviceID == "" {
		return
	}

	select {
	case c.triggers <- deviceID:
	default:
		// A trigger is already pending; it will force a resync anyway.
	}
}

// TopicFor builds the per-device trigger topic.
func TopicFor(deviceID string) string {
	return "devices/" + deviceID + "/apicall"
}
