// SPDX-License-Identifier: Apache-2.0

// Package client implements the interactive client application runtime.
//
// It wires the login flow, client services, the sync stream consumer and the
// background rotation job into a single process lifecycle.
package client
