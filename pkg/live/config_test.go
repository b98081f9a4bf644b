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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skotrack/vmarg/pkg/api"
	"github.com/skotrack/vmarg/pkg/push"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name: "valid_mqtt",
			config: Config{
				API:  api.Config{BaseURL: "https://api.example.com"},
				Push: PushConfig{Kind: PushKindMQTT, MQTT: &push.MQTTConfig{BrokerURL: "tcp://broker:1883"}},
			},
		},
		{
			name: "valid_nats",
			config: Config{
				API:  api.Config{BaseURL: "https://api.example.com"},
				Push: PushConfig{Kind: PushKindNATS, NATS: &push.NATSConfig{URL: "nats://localhost:4222"}},
			},
		},
		{
			name:    "missing_base_url",
			config:  Config{},
			wantErr: errMissingBaseURL,
		},
		{
			name: "default_kind_requires_mqtt_broker",
			config: Config{
				API: api.Config{BaseURL: "https://api.example.com"},
			},
			wantErr: errMissingBroker,
		},
		{
			name: "nats_kind_requires_url",
			config: Config{
				API:  api.Config{BaseURL: "https://api.example.com"},
				Push: PushConfig{Kind: PushKindNATS},
			},
			wantErr: errMissingNATSURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestConfigValidateDefaults(t *testing.T) {
	cfg := Config{
		API:  api.Config{BaseURL: "https://api.example.com"},
		Push: PushConfig{Kind: PushKindMQTT, MQTT: &push.MQTTConfig{BrokerURL: "tcp://broker:1883"}},
	}

	require.NoError(t, cfg.Validate())
	assert.Equal(t, defaultListenAddr, cfg.ListenAddr)
}

func TestConfigValidateUnknownPushKind(t *testing.T) {
	cfg := Config{
		API:  api.Config{BaseURL: "https://api.example.com"},
		Push: PushConfig{Kind: "kafka"},
	}

	require.Error(t, cfg.Validate())
}

func TestConfigTokenEnvOverride(t *testing.T) {
	t.Setenv(tokenEnvVar, "env-token")

	cfg := Config{
		API:  api.Config{BaseURL: "https://api.example.com", Token: "file-token"},
		Push: PushConfig{Kind: PushKindMQTT, MQTT: &push.MQTTConfig{BrokerURL: "tcp://broker:1883"}},
	}

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "env-token", cfg.API.Token)
}
