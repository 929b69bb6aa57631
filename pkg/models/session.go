package models

import "slices"

type EngineKind string

const (
	EngineChromium EngineKind = "chromium"
	EngineFirefox  EngineKind = "firefox"
	EngineWebkit   EngineKind = "webkit"

	DefaultEngine = EngineChromium
)

var validEngines = []EngineKind{EngineChromium, EngineFirefox, EngineWebkit}

func (k EngineKind) Valid() bool {
	return slices.Contains(validEngines, k)
}

func ValidEngines() []EngineKind {
	return slices.Clone(validEngines)
}

type Viewport struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

type Geolocation struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// Settings describe how a session's browser is launched and configured.
// They are fixed at creation time and saved for recovery.
type Settings struct {
	Kind        EngineKind   `json:"kind,omitempty" yaml:"kind,omitempty"`
	Headless    *bool        `json:"headless,omitempty" yaml:"headless,omitempty"`
	Viewport    *Viewport    `json:"viewport,omitempty" yaml:"viewport,omitempty"`
	UserAgent   string       `json:"userAgent,omitempty" yaml:"userAgent,omitempty"`
	Locale      string       `json:"locale,omitempty" yaml:"locale,omitempty"`
	Timezone    string       `json:"timezone,omitempty" yaml:"timezone,omitempty"`
	Geolocation *Geolocation `json:"geolocation,omitempty" yaml:"geolocation,omitempty"`
	Permissions []string     `json:"permissions,omitempty" yaml:"permissions,omitempty"`
}

func (s Settings) IsHeadless() bool {
	if s.Headless == nil {
		return true
	}
	return *s.Headless
}

type Cookie struct {
	Name     string  `json:"name"`
	Value    string  `json:"value"`
	Domain   string  `json:"domain,omitempty"`
	Path     string  `json:"path,omitempty"`
	Expires  float64 `json:"expires,omitempty"`
	HTTPOnly bool    `json:"httpOnly,omitempty"`
	Secure   bool    `json:"secure,omitempty"`
	SameSite string  `json:"sameSite,omitempty"`
}

type LogLevel string

const (
	LogLevelLog   LogLevel = "log"
	LogLevelError LogLevel = "error"
)
