// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line smoke client runtime.
//
// It drives a full account round-trip against a running backend: greeting,
// version probe, registration or login, identity lookup, settings read and
// update, and a final diagnostics snapshot.
package client
