package leads

import "errors"

var (
	// ErrMissingRequiredFields is returned when name, email, service, or
	// message is absent. Malformed request bodies collapse into this same
	// error so callers cannot distinguish a parse failure from an empty
	// submission.
	ErrMissingRequiredFields = errors.New("missing required fields")

	// ErrSinkUnavailable is returned when the sheet sink is not configured.
	ErrSinkUnavailable = errors.New("lead sink unavailable")
)
