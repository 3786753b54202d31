// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated mirrors the handler-level check: a configuration
// that enables no transport cannot produce a runnable server.
var errNoServersAreCreated = errors.New("no servers are created")
