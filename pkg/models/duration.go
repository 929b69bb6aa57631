package models

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

// Duration marshals as a human readable string ("90s", "10m") instead of
// nanoseconds, it is used in JSON bodies and YAML profiles.
type Duration struct {
	time.Duration
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return errors.Wrap(err, "invalid duration")
	}
	d.Duration = parsed
	return nil
}
