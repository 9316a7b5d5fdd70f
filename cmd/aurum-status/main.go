// Copyright 2025 Aurum Labs
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

package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/aurumlabs/aurum-core/status"
)

type statusFlags struct {
	flagset *flag.FlagSet
	listen  string
	debug   bool
}

func main() {
	f := &statusFlags{
		flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.listen,
		"listen",
		":8080",
		"address to listen on in host:port format",
	)
	f.flagset.BoolVar(&f.debug, "debug", false, "enable debug logging")
	if err := f.flagset.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	level := slog.LevelInfo
	if f.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	)

	node := status.NewNode(logger)
	node.SetTipHeight(0)
	node.AddPending([]byte("demo-tx-1"))
	node.AddPending([]byte("demo-tx-2"))

	server := &http.Server{
		Addr:              f.listen,
		Handler:           node.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("AURUM status node listening", "address", f.listen)
	if err := server.ListenAndServe(); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}
