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

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/skotrack/vmarg/pkg/logger"
	"github.com/skotrack/vmarg/pkg/models"
)

const natsReconnectWait = 2 * time.Second

// NATSConfig holds connection settings for the NATS push channel.
type NATSConfig struct {
	URL string `json:"url"`
}

// NATSChannel is the push channel for deployments colocated with the backend
// bus. Subjects mirror the MQTT topic scheme: devices.{id}.apicall.
type NATSChannel struct {
	conn     *nats.Conn
	log      logger.Logger
	triggers chan string

	mu       sync.Mutex
	deviceID string
	sub      *nats.Subscription
}

// NewNATSChannel connects to the NATS server. Reconnects are handled by the
// client library indefinitely.
func NewNATSChannel(cfg *NATSConfig, log logger.Logger) (*NATSChannel, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("%w: nats url is required", models.ErrValidation)
	}

	conn, err := nats.Connect(cfg.URL,
		nats.Name("vmarg-livesync-"+uuid.NewString()[:8]),
		nats.ReconnectWait(natsReconnectWait),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Warn().Err(err).Msg("NATS disconnected")
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			log.Info().Msg("NATS reconnected")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: nats connect: %w", models.ErrNetwork, err)
	}

	return &NATSChannel{
		conn:     conn,
		log:      log,
		triggers: make(chan string, triggerMailboxSize),
	}, nil
}

// Subscribe replaces the active subscription with deviceID's subject.
func (c *NATSChannel) Subscribe(deviceID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.dropSubscriptionLocked()

	subject := SubjectFor(deviceID)

	sub, err := c.conn.Subscribe(subject, func(msg *nats.Msg) {
		c.handleMessage(msg.Subject, msg.Data)
	})
	if err != nil {
		return fmt.Errorf("%w: nats subscribe %s: %w", models.ErrNetwork, subject, err)
	}

	c.deviceID = deviceID
	c.sub = sub

	c.log.Debug().Str("subject", subject).Msg("NATS subscription replaced")

	return nil
}

// Unsubscribe drops the active subscription, if any.
func (c *NATSChannel) Unsubscribe() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.dropSubscriptionLocked()
}

// Triggers returns the single-slot trigger mailbox.
func (c *NATSChannel) Triggers() <-chan string {
	return c.triggers
}

// Close tears down the subscription and the connection.
func (c *NATSChannel) Close() {
	c.Unsubscribe()
	c.conn.Close()
}

func (c *NATSChannel) dropSubscriptionLocked() {
	if c.sub == nil {
		return
	}

	if err := c.sub.Unsubscribe(); err != nil {
		c.log.Warn().Err(err).Msg("NATS unsubscribe failed")
	}

	c.sub = nil
	c.deviceID = ""
}

func (c *NATSChannel) handleMessage(subject string, data []byte) {
	if string(data) != TriggerPayload {
		return
	}

	c.mu.Lock()
	deviceID := c.deviceID
	c.mu.Unlock()

	if deviceID == "" || subject != SubjectFor(deviceID) {
		return
	}

	select {
	case c.triggers <- deviceID:
	default:
	}
}

// SubjectFor builds the per-device trigger subject.
func SubjectFor(deviceID string) string {
	return "devices." + deviceID + ".apicall"
}
