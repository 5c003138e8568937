// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidRequestBody is returned when an operation body is not a flat
// JSON object.
var ErrInvalidRequestBody = errors.New("request body must be a JSON object")
