package interp

import (
	"fmt"

	"github.com/cwbudde/algo-emm/optics"
)

var errTooFewPoints = fmt.Errorf("interp: spline requires at least 2 points: %w", optics.ErrInvalidArgument)
