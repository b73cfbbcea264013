// Copyright 2017 Ewout Prangsma
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	terminate "github.com/pulcy/go-terminate"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/binkynet/SharedPin/pkg/environment"
	"github.com/binkynet/SharedPin/pkg/logging"
	"github.com/binkynet/SharedPin/pkg/server"
	"github.com/binkynet/SharedPin/pkg/service"
	"github.com/binkynet/SharedPin/pkg/service/bridge"
)

const (
	projectName        = "BinkyNet Shared Pin"
	defaultServerPort  = 7130
	defaultVirtualPins = 8
)

var (
	projectVersion = "dev"
	projectBuild   = "dev"
	maskAny        = errors.WithStack
)

func main() {
	var levelFlag string
	var logFile string
	var bridgeType string
	var serverHost string
	var serverPort int
	var svcConfig service.Config

	pflag.StringVarP(&levelFlag, "level", "l", "debug", "Set log level")
	pflag.StringVar(&logFile, "log-file", "", "If set, logs are also written to this file")
	pflag.StringVarP(&bridgeType, "bridge", "b", "auto", "Type of bridge to use (auto|rpi|virtual)")
	pflag.StringVar(&serverHost, "host", "0.0.0.0", "Host address the HTTP server will listen on")
	pflag.IntVar(&serverPort, "port", defaultServerPort, "Port the HTTP server will listen on")
	pflag.IntVar(&svcConfig.OutputPin, "output-pin", 23, "Pin number of the status LED")
	pflag.IntVar(&svcConfig.InputPin, "input-pin", 24, "Pin number of the button")
	pflag.BoolVar(&svcConfig.ActiveLow, "active-low", true, "Pins are active low")
	pflag.IntVar(&svcConfig.BlinkPeriod, "blink-period", 5, "Number of ticks between two blinks")
	pflag.DurationVar(&svcConfig.TickInterval, "tick", 100*time.Millisecond, "Time between two ticks of the loop")
	pflag.Parse()

	level, err := zerolog.ParseLevel(levelFlag)
	if err != nil {
		Exitf("Invalid log level '%s': %v\n", levelFlag, err)
	}
	logger, closeLog, err := logging.NewLogger(level, logFile)
	if err != nil {
		Exitf("Failed to initialize logging: %v\n", err)
	}
	defer closeLog()

	if bridgeType == "auto" {
		bridgeType = environment.AutoDetectBridgeType(logger)
	}

	var br bridge.API
	var levels server.LevelSource
	switch bridgeType {
	case environment.BridgeTypeRaspberryPi:
		br, err = bridge.NewRaspberryPiBridge()
		if err != nil {
			Exitf("Failed to initialize Raspberry Pi Bridge: %v\n", err)
		}
	case environment.BridgeTypeVirtual:
		vb := bridge.NewVirtualBridge(defaultVirtualPins)
		vb.Subscribe(func(c bridge.LevelChange) {
			logger.Debug().Int("pin", c.Pin).Str("level", c.Level.String()).Msg("Level changed")
		})
		br, levels = vb, vb
	default:
		Exitf("Unknown bridge type '%s' (rpi|virtual)\n", bridgeType)
	}
	defer br.Close()

	svc, err := service.NewService(svcConfig, service.Dependencies{
		Log:    logger,
		Bridge: br,
	})
	if err != nil {
		Exitf("Failed to initialize Service: %v\n", err)
	}

	httpServer, err := server.New(server.Config{
		Host: serverHost,
		Port: serverPort,
	}, logger.With().Str("component", "server").Logger(), levels)
	if err != nil {
		Exitf("Failed to initialize Server: %v\n", err)
	}

	// Prepare to shutdown in a controlled manor
	ctx, cancel := context.WithCancel(context.Background())
	t := terminate.NewTerminator(func(template string, args ...interface{}) {
		logger.Info().Msgf(template, args...)
	}, cancel)
	go t.ListenSignals()

	fmt.Printf("Starting %s (version %s build %s)\n", projectName, projectVersion, projectBuild)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return maskAny(svc.Run(ctx)) })
	g.Go(func() error { return maskAny(httpServer.Run(ctx)) })
	if err := g.Wait(); err != nil {
		br.Close()
		Exitf("Service run failed: %v\n", err)
	}
}

// Print the given error message and exit with code 1
func Exitf(message string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, message, args...)
	os.Exit(1)
}
