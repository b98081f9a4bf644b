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

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skotrack/vmarg/pkg/logger"
)

var errMissingName = errors.New("name is required")

type testConfig struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func (c *testConfig) Validate() error {
	if c.Name == "" {
		return errMissingName
	}

	return nil
}

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expectError bool
		expected    testConfig
	}{
		{
			name:     "valid config",
			content:  `{"name":"livesync","count":3}`,
			expected: testConfig{Name: "livesync", Count: 3},
		},
		{
			name:        "validation failure",
			content:     `{"count":1}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			content:     `{"name":`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempConfig(t, tt.content)

			var cfg testConfig

			err := NewConfig(logger.NewTestLogger()).LoadAndValidate(context.Background(), path, &cfg)

			if tt.expectError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestLoadAndValidateMissingFile(t *testing.T) {
	var cfg testConfig

	err := NewConfig(nil).LoadAndValidate(context.Background(), "/nonexistent/config.json", &cfg)
	require.Error(t, err)
}

func TestValidateConfigNonValidator(t *testing.T) {
	type plain struct{ A int }

	require.NoError(t, ValidateConfig(&plain{A: 1}))
}
