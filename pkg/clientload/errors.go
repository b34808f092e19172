package clientload

import "errors"

var ErrInvalidRoutePattern = errors.New("clientload: invalid route pattern")
