// Package options provides shared validation for tool and command inputs.
package options

import (
	"fmt"
	"strings"

	"github.com/erraggy/oaskit/oaserrors"
)

// Source is one way an input can be supplied.
type Source struct {
	Name string
	Set  bool
}

// ExactlyOne returns a ConfigError unless exactly one of sources is set.
func ExactlyOne(sources ...Source) error {
	names := make([]string, len(sources))
	count := 0
	for i, s := range sources {
		names[i] = s.Name
		if s.Set {
			count++
		}
	}
	if count == 1 {
		return nil
	}
	return &oaserrors.ConfigError{
		Option:  "input",
		Message: fmt.Sprintf("exactly one of %s must be provided (got %d)", strings.Join(names, " or "), count),
	}
}
