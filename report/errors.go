package report

import "errors"

// ErrAlreadyFinalized is returned by Log once Finalize has run; a Writer is
// single-use per search run (spec §6 "Logger" lifetime matches one Run call).
var ErrAlreadyFinalized = errors.New("report: writer already finalized")
