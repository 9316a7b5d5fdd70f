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

// Package status exposes the read-only node status surface: the pending
// transaction count and the Merkle root most recently computed over the
// pending set. Its contract toward the core is purely functional; it holds
// no session state.
package status

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/aurumlabs/aurum-core/merkle"
)

// RootBech32Prefix is the human-readable prefix for rendered state roots.
const RootBech32Prefix = "aurum"

// Node tracks the pending transactions the status surface reports on. The
// mempool is read-mostly; a RWMutex keeps concurrent readers cheap.
type Node struct {
	mtx       sync.RWMutex
	tipHeight uint64
	mempool   [][]byte
	logger    *slog.Logger
}

// NewNode returns a Node logging through the given logger, or
// slog.Default() when nil.
func NewNode(logger *slog.Logger) *Node {
	if logger == nil {
		logger = slog.Default()
	}
	return &Node{logger: logger}
}

// AddPending appends a raw pending transaction.
func (n *Node) AddPending(tx []byte) {
	n.mtx.Lock()
	defer n.mtx.Unlock()
	n.mempool = append(n.mempool, tx)
}

// SetTipHeight records the current chain tip height.
func (n *Node) SetTipHeight(height uint64) {
	n.mtx.Lock()
	defer n.mtx.Unlock()
	n.tipHeight = height
}

// Response is the body of a GET /status reply.
type Response struct {
	TipHeight       uint64 `json:"tip_height"`
	MempoolLen      int    `json:"mempool_len"`
	StateRootHex    string `json:"state_root_hex"`
	StateRootBech32 string `json:"state_root_bech32"`
}

// Handler returns the HTTP handler serving GET /status.
func (n *Node) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /status", n.handleStatus)
	return mux
}

func (n *Node) handleStatus(w http.ResponseWriter, r *http.Request) {
	n.mtx.RLock()
	tipHeight := n.tipHeight
	mempool := n.mempool
	n.mtx.RUnlock()

	root, err := merkle.Root(mempool)
	if err != nil {
		// Internal error kinds stay in the logs; the response body carries
		// no internal state.
		n.logger.Error(
			"failed to compute state root",
			"component", "status",
			"error", err,
		)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := Response{
		TipHeight:       tipHeight,
		MempoolLen:      len(mempool),
		StateRootHex:    root.String(),
		StateRootBech32: root.Bech32(RootBech32Prefix),
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		n.logger.Error(
			"failed to write status response",
			"component", "status",
			"error", err,
		)
		return
	}
	n.logger.Debug(
		"served status",
		"component", "status",
		"mempool_len", resp.MempoolLen,
		"remote", r.RemoteAddr,
	)
}
