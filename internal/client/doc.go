// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the home client runtime.
//
// It restores the paired test from the local store, starts the background
// refresh of the test result and runs the terminal UI until the user leaves.
package client
