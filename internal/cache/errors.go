package cache

import "fmt"

// GatewayError wraps a failed or malformed external-provider call. The
// engine never falls back to stale data on a gateway failure.
type GatewayError struct {
	Kind string
	Err  error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%s gateway: %v", e.Kind, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// StoreError wraps a failed persistent-store operation. The caching
// contract depends on store availability, so these are never masked by
// serving from the gateway instead.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
