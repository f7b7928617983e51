package pseudojet

import "errors"

// ErrInvalidMomentum indicates that a four-momentum component is NaN, or
// that the cached rapidity/azimuth recomputed from it would be NaN.
var ErrInvalidMomentum = errors.New("pseudojet: invalid momentum component (NaN)")
