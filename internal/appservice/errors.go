package appservice

import "errors"

// Capability errors describe operations the platform does not offer for the
// session's shape. They are sentinels so callers can tell them apart from
// remote-service failures with errors.Is and explain the limitation instead
// of reporting a generic error.
var (
	// ErrSlotFunctionsNotSupported is returned when a function-specific
	// operation is invoked on a deployment slot. The platform does not list
	// or manage functions per slot; no remote call is made.
	ErrSlotFunctionsNotSupported = errors.New("listing, getting, and deleting functions is not supported for deployment slots")

	// ErrNoRepositoryHostName is returned when a Kudu client is requested
	// for a site whose descriptor had no repository-type host binding.
	ErrNoRepositoryHostName = errors.New("site has no repository host name; the Kudu endpoint is unavailable")
)

// Construction errors. New never returns a partially built session.
var (
	// ErrMalformedServerFarmID is wrapped into the construction error when
	// the descriptor's serverFarmId does not match the expected
	// /subscriptions/{sub}/resourceGroups/{rg}/providers/Microsoft.Web/serverfarms/{plan}
	// shape.
	ErrMalformedServerFarmID = errors.New("serverFarmId does not match the expected resource id shape")

	// ErrMissingDescriptorField is wrapped into the construction error when
	// a required descriptor field is absent.
	ErrMissingDescriptorField = errors.New("site descriptor is missing a required field")
)
