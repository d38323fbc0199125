// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the note store, the debounced save job and the
// bridge to the host into a single process lifecycle. Without a configured
// host address the notes gateway runs in-process.
package client
