package engine

import "errors"

// ErrThresholdOutOfRange is returned when AnsThresh or ClueThresh is
// outside [0, 1].
var ErrThresholdOutOfRange = errors.New("engine: threshold out of range [0,1]")

// ErrIndexBuildFailure is returned when the answer similarity index
// cannot be built because zero unique canonical answers survive
// setup. This is distinct from an empty corpus (which is not an
// error; see Run).
var ErrIndexBuildFailure = errors.New("engine: cannot build answer similarity index: zero unique answers")
