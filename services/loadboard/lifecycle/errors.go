package lifecycle

import (
	"errors"

	"github.com/DEEDAVISINC/FLEETFLOW-SK-sub015/services/loadboard/store"
)

var (
	// ErrNotFound mirrors the store sentinel so callers can errors.Is against
	// either package.
	ErrNotFound = store.ErrNotFound

	// ErrValidation rejects a creation whose required route/rate/equipment
	// fields are missing or malformed. Nothing is written when it fires.
	ErrValidation = errors.New("invalid load input")

	// ErrInvalidTransition rejects a status change that is not an edge in the
	// lifecycle state machine. The load is left unchanged.
	ErrInvalidTransition = errors.New("illegal load status transition")
)
