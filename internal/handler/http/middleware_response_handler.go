// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// responseWriter decorates [http.ResponseWriter] to record the status code
// and the number of body bytes written, so middleware such as withLogging
// can report them after the downstream handler returns.
//
// WriteHeader is forwarded to the wrapped writer exactly once; later calls
// are ignored, matching the contract of [http.ResponseWriter].
type responseWriter struct {
	http.ResponseWriter

	// status is recorded on the first WriteHeader call; zero until then.
	status int

	// wroteHeader guards against forwarding a second WriteHeader.
	wroteHeader bool

	// size accumulates bytes written across all Write calls.
	size int

	// body references the slice passed to the latest Write call.
	body []byte
}

// WriteHeader records statusCode and forwards it to the wrapped writer. If
// the header was already written the call is a no-op.
func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write forwards b to the wrapped writer and adds the written byte count to
// size. A Write before any WriteHeader implies status 200, same as the
// standard library. body is replaced, not appended, on every call.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	w.body = b
	return n, err
}
