package pricing

import (
	"errors"
	"fmt"

	"haulify/models"
)

// InvalidItemError reports a cart entry with a negative weight or volume, or
// a non-positive quantity. The caller must reject the cart before quoting.
type InvalidItemError struct {
	Name   string
	Reason string
}

func (e *InvalidItemError) Error() string {
	return fmt.Sprintf("invalid item %q: %s", e.Name, e.Reason)
}

// UnknownTierError reports a tier identifier outside the closed enumeration.
// The tier table never falls back to a default rate.
type UnknownTierError struct {
	Tier models.ServiceTier
}

func (e *UnknownTierError) Error() string {
	return fmt.Sprintf("unknown service tier %q", e.Tier)
}

// ErrNegativeDistance rejects a distance below zero; the engine performs no
// other validation on the measured distance value.
var ErrNegativeDistance = errors.New("distance must be non-negative")
