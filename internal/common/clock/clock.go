package clock

import "time"

// NowFunc abstracts time.Now so services can be tested with a fixed clock.
type NowFunc func() time.Time
