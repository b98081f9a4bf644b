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

package lifecycle

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skotrack/vmarg/pkg/logger"
)

type fakeService struct {
	started  chan struct{}
	stopped  atomic.Bool
	startErr error
}

func newFakeService() *fakeService {
	return &fakeService{started: make(chan struct{})}
}

func (f *fakeService) Start(context.Context) error {
	if f.startErr != nil {
		return f.startErr
	}

	close(f.started)

	return nil
}

func (f *fakeService) Stop(context.Context) error {
	f.stopped.Store(true)
	return nil
}

func TestRunServerStartsAndStopsService(t *testing.T) {
	svc := newFakeService()

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)

	go func() {
		done <- RunServer(ctx, &ServerOptions{
			ListenAddr:  "localhost:0",
			ServiceName: "livesync-test",
			Service:     svc,
			Handler:     http.NewServeMux(),
			Logger:      logger.NewTestLogger(),
		})
	}()

	select {
	case <-svc.started:
	case <-time.After(2 * time.Second):
		t.Fatal("service was never started")
	}

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("RunServer did not return after cancellation")
	}

	assert.True(t, svc.stopped.Load())
}

func TestRunServerStartFailure(t *testing.T) {
	svc := newFakeService()
	svc.startErr = errors.New("boom")

	err := RunServer(context.Background(), &ServerOptions{
		ListenAddr:  "localhost:0",
		ServiceName: "livesync-test",
		Service:     svc,
		Handler:     http.NewServeMux(),
		Logger:      logger.NewTestLogger(),
	})

	require.ErrorIs(t, err, svc.startErr)
	assert.False(t, svc.stopped.Load())
}

func TestCreateComponentLogger(t *testing.T) {
	log, err := CreateComponentLogger("livesync", nil)
	require.NoError(t, err)
	assert.NotNil(t, log)
}
