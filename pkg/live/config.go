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

package live

import (
	"errors"
	"fmt"
	"os"

	"github.com/skotrack/vmarg/pkg/api"
	"github.com/skotrack/vmarg/pkg/logger"
	"github.com/skotrack/vmarg/pkg/push"
)

const (
	PushKindMQTT = "mqtt"
	PushKindNATS = "nats"

	defaultListenAddr = "localhost:8090"

	// tokenEnvVar overrides the config-file token so deployments can keep
	// secrets out of files.
	tokenEnvVar = "VMARG_API_TOKEN"
)

var (
	errMissingBaseURL = errors.New("api.base_url is required")
	errMissingBroker  = errors.New("push.mqtt.broker_url is required for push kind 'mqtt'")
	errMissingNATSURL = errors.New("push.nats.url is required for push kind 'nats'")
)

// PushConfig selects and configures the push channel.
type PushConfig struct {
	Kind string           `json:"kind"`
	MQTT *push.MQTTConfig `json:"mqtt,omitempty"`
	NATS *push.NATSConfig `json:"nats,omitempty"`
}

// Config is the livesync daemon configuration.
type Config struct {
	API        api.Config     `json:"api"`
	Push       PushConfig     `json:"push"`
	ListenAddr string         `json:"listen_addr,omitempty"`
	APIKey     string         `json:"api_key,omitempty"`
	Logging    *logger.Config `json:"logging,omitempty"`
}

// Validate checks required fields, applies defaults, and honors the token
// environment override.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errMissingBaseURL
	}

	if token := os.Getenv(tokenEnvVar); token != "" {
		c.API.Token = token
	}

	if c.ListenAddr == "" {
		c.ListenAddr = defaultListenAddr
	}

	if c.Push.Kind == "" {
		c.Push.Kind = PushKindMQTT
	}

	switch c.Push.Kind {
	case PushKindMQTT:
		if c.Push.MQTT == nil || c.Push.MQTT.BrokerURL == "" {
			return errMissingBroker
		}
	case PushKindNATS:
		if c.Push.NATS == nil || c.Push.NATS.URL == "" {
			return errMissingNATSURL
		}
	default:
		return fmt.Errorf("unknown push kind %q (expected '%s' or '%s')", c.Push.Kind, PushKindMQTT, PushKindNATS)
	}

	return nil
}

// NewPushChannel constructs the configured push channel.
func (c *Config) NewPushChannel(log logger.Logger) (PushChannel, error) {
	switch c.Push.Kind {
	case PushKindNATS:
		return push.NewNATSChannel(c.Push.NATS, log)
	default:
		return push.NewMQTTChannel(c.Push.MQTT, log)
	}
}
