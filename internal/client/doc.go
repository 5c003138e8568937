// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI to the catalog and operation services and owns
// the process lifecycle: start, interrupt handling and shutdown logging.
package client
