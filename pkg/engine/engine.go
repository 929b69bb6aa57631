// Package engine defines the contract with the external browser automation
// engine. The rest of the system only ever talks to these interfaces, the
// concrete binding lives in internal/engine.
package engine

import (
	"context"

	"github.com/browsermux/browsermux/pkg/models"
)

type ContextOptions struct {
	Viewport    *models.Viewport
	UserAgent   string
	Locale      string
	Timezone    string
	Geolocation *models.Geolocation
	Permissions []string
}

type Engine interface {
	Launch(ctx context.Context, kind models.EngineKind, headless bool) (Browser, error)
}

type Browser interface {
	NewContext(ctx context.Context, opts ContextOptions) (BrowserContext, error)
	Contexts() []BrowserContext
	IsConnected() bool
	// OnDisconnected registers a callback fired when the underlying browser
	// process goes away, whether closed deliberately or crashed.
	OnDisconnected(fn func())
	Close(ctx context.Context) error
}

type BrowserContext interface {
	NewPage(ctx context.Context) (Page, error)
	Pages() []Page
	Cookies(ctx context.Context) ([]models.Cookie, error)
	AddCookies(ctx context.Context, cookies []models.Cookie) error
	Close(ctx context.Context) error
}

type ConsoleEntry struct {
	Level models.LogLevel
	Text  string
}

type Page interface {
	Navigate(ctx context.Context, url string) error
	URL() string
	Evaluate(ctx context.Context, script string) (interface{}, error)
	OnConsole(fn func(ConsoleEntry))
	OnPageError(fn func(error))
	Close(ctx context.Context) error
}
