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

package main

import (
	"context"
	"flag"
	"log"

	"github.com/skotrack/vmarg/pkg/api"
	"github.com/skotrack/vmarg/pkg/config"
	"github.com/skotrack/vmarg/pkg/lifecycle"
	"github.com/skotrack/vmarg/pkg/live"
	"github.com/skotrack/vmarg/pkg/server"
)

func main() {
	configPath := flag.String("config", "/etc/vmarg/livesync.json", "Path to config file")
	flag.Parse()

	ctx := context.Background()
	cfgLoader := config.NewConfig(nil)

	var cfg live.Config

	if err := cfgLoader.LoadAndValidate(ctx, *configPath, &cfg); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logInstance, err := lifecycle.CreateComponentLogger("livesync", cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	pushChannel, err := cfg.NewPushChannel(logInstance)
	if err != nil {
		log.Fatalf("Failed to connect push channel: %v", err)
	}

	client := api.NewClient(&cfg.API, logInstance)
	controller := live.New(client, pushChannel, logInstance)
	httpServer := server.NewServer(controller, cfg.APIKey, logInstance)

	opts := &lifecycle.ServerOptions{
		ListenAddr:  cfg.ListenAddr,
		ServiceName: "livesync",
		Service:     controller,
		Handler:     httpServer,
		Logger:      logInstance,
	}

	if err := lifecycle.RunServer(ctx, opts); err != nil {
		log.Fatalf("Live sync service failed: %v", err)
	}
}
