package flow

import "errors"

// ErrVirtualizationDisabled is returned by the queries that are only
// meaningful in virtualized mode (visible index ranges, typical-item
// viewport measurement) when UseVirtualLayout is false. Calling them
// without virtualization is a contract violation, not a recoverable state.
var ErrVirtualizationDisabled = errors.New("virtual layout is disabled")
