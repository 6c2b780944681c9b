// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It ties the terminal UI, the server connection, the local session store
// and the heartbeat into a single process lifecycle.
package client
