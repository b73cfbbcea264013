// Copyright 2026 Ewout Prangsma
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
// Author Ewout Prangsma
//

package server

import (
	"context"
	"net"
	"net/http"
	"net/http/pprof"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/binkynet/SharedPin/pkg/pin"
)

// Config for the HTTP server.
type Config struct {
	// Host interface to listen on
	Host string
	// Port to listen on for HTTP requests
	Port int
}

// LevelSource provides a snapshot of pin levels.
type LevelSource interface {
	Levels() []pin.Level
}

// PinLevel is the JSON representation of a single pin level.
type PinLevel struct {
	Pin   int    `json:"pin"`
	Level string `json:"level"`
}

// Server runs the HTTP server for the service.
type Server struct {
	Config
	log    zerolog.Logger
	levels LevelSource
}

// New configures a new Server.
// levels may be nil, in which case /pins is not served.
func New(cfg Config, log zerolog.Logger, levels LevelSource) (*Server, error) {
	return &Server{
		Config: cfg,
		log:    log,
		levels: levels,
	}, nil
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	httpRouter := echo.New()
	httpRouter.HideBanner = true
	httpRouter.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	httpRouter.GET("/debug/pprof/*", echo.WrapHandler(http.HandlerFunc(pprof.Index)))
	httpRouter.GET("/health", echo.WrapHandler(http.HandlerFunc(healthHandler)))
	if s.levels != nil {
		httpRouter.GET("/pins", s.getPins)
	}
	return httpRouter
}

// Run the server until the given context is canceled.
func (s *Server) Run(ctx context.Context) error {
	log := s.log
	httpAddr := net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
	httpLis, err := net.Listen("tcp", httpAddr)
	if err != nil {
		return errors.Wrapf(err, "failed to listen on address %s", httpAddr)
	}
	httpSrv := http.Server{
		Handler: s.Handler(),
	}

	// Serve apis
	log.Debug().Str("address", httpAddr).Msg("Serving HTTP")
	go func() {
		if err := httpSrv.Serve(httpLis); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("failed to serve HTTP server")
		}
		log.Debug().Str("address", httpAddr).Msg("Done Serving HTTP")
	}()

	// Wait until context closed
	<-ctx.Done()

	log.Info().Msg("Closing server")
	httpSrv.Shutdown(context.Background())
	return nil
}

// getPins returns the current level of all pins.
func (s *Server) getPins(c echo.Context) error {
	levels := s.levels.Levels()
	result := make([]PinLevel, 0, len(levels))
	for i, l := range levels {
		result = append(result, PinLevel{Pin: i, Level: l.String()})
	}
	return c.JSON(http.StatusOK, result)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("OK\n"))
}
