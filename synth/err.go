// Copyright 2026 The Tabsyn Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package synth

import (
	"fmt"

	"github.com/pkg/errors"
)

// ConfigError reports invalid inputs, targets, gate libraries, or
// options.  It is surfaced before the search loop starts; nothing is
// recovered internally.  Failure to find a solution is not an error
// (see Exhausted).
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string {
	return e.msg
}

func configErrf(format string, args ...interface{}) error {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}

// IsConfig tells whether err is (or wraps) a ConfigError.
func IsConfig(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
