// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server
// configuration carries neither an HTTP nor a gRPC address. A server with
// no transport is a misconfiguration that must stop startup.
var errNoHandlersAreCreated = errors.New("no handlers are created")
