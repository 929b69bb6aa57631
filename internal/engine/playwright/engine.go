// Package playwright binds the engine contract to playwright-go. The
// playwright API is not context-aware, ctx arguments stop at this layer.
package playwright

import (
	"context"
	"io"
	"sync"

	"github.com/pkg/errors"
	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"

	"github.com/browsermux/browsermux/pkg/engine"
	"github.com/browsermux/browsermux/pkg/models"
)

type PlaywrightEngine struct {
	once   sync.Once
	pw     *playwright.Playwright
	runErr error
	l      *zap.SugaredLogger
}

func NewPlaywrightEngine(l *zap.Logger) *PlaywrightEngine {
	return &PlaywrightEngine{l: l.Sugar()}
}

func (e *PlaywrightEngine) Launch(_ context.Context, kind models.EngineKind, headless bool) (engine.Browser, error) {
	e.once.Do(func() {
		// driver output would pollute our logs
		opts := &playwright.RunOptions{
			Verbose: false,
			Stdout:  io.Discard,
			Stderr:  io.Discard,
		}
		if err := playwright.Install(opts); err != nil {
			e.runErr = errors.Wrap(err, "failed to install playwright driver")
			return
		}
		e.pw, e.runErr = playwright.Run(opts)
		if e.runErr == nil {
			e.l.Info("playwright driver started")
		}
	})
	if e.runErr != nil {
		return nil, e.runErr
	}

	var bt playwright.BrowserType
	switch kind {
	case models.EngineChromium:
		bt = e.pw.Chromium
	case models.EngineFirefox:
		bt = e.pw.Firefox
	case models.EngineWebkit:
		bt = e.pw.WebKit
	default:
		return nil, errors.Errorf("unknown engine kind %q", kind)
	}

	br, err := bt.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(headless),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to launch %s", kind)
	}
	return &pwBrowser{br: br}, nil
}

func (e *PlaywrightEngine) Shutdown(_ context.Context) error {
	if e.pw == nil {
		return nil
	}
	return e.pw.Stop()
}

type pwBrowser struct {
	br playwright.Browser
}

func (b *pwBrowser) NewContext(_ context.Context, opts engine.ContextOptions) (engine.BrowserContext, error) {
	ctxOpts := playwright.BrowserNewContextOptions{}
	if opts.Viewport != nil {
		ctxOpts.Viewport = &playwright.Size{
			Width:  opts.Viewport.Width,
			Height: opts.Viewport.Height,
		}
	}
	if opts.UserAgent != "" {
		ctxOpts.UserAgent = playwright.String(opts.UserAgent)
	}
	if opts.Locale != "" {
		ctxOpts.Locale = playwright.String(opts.Locale)
	}
	if opts.Timezone != "" {
		ctxOpts.TimezoneId = playwright.String(opts.Timezone)
	}
	if opts.Geolocation != nil {
		ctxOpts.Geolocation = &playwright.Geolocation{
			Latitude:  opts.Geolocation.Latitude,
			Longitude: opts.Geolocation.Longitude,
		}
	}
	if len(opts.Permissions) > 0 {
		ctxOpts.Permissions = opts.Permissions
	}

	c, err := b.br.NewContext(ctxOpts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create browser context")
	}
	return &pwContext{c: c}, nil
}

func (b *pwBrowser) Contexts() []engine.BrowserContext {
	contexts := b.br.Contexts()
	out := make([]engine.BrowserContext, len(contexts))
	for i, c := range contexts {
		out[i] = &pwContext{c: c}
	}
	return out
}

func (b *pwBrowser) IsConnected() bool {
	return b.br.IsConnected()
}

func (b *pwBrowser) OnDisconnected(fn func()) {
	b.br.OnDisconnected(func(playwright.Browser) {
		fn()
	})
}

func (b *pwBrowser) Close(_ context.Context) error {
	return b.br.Close()
}

type pwContext struct {
	c playwright.BrowserContext
}

func (c *pwContext) NewPage(_ context.Context) (engine.Page, error) {
	p, err := c.c.NewPage()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open page")
	}
	return &pwPage{p: p}, nil
}

func (c *pwContext) Pages() []engine.Page {
	pages := c.c.Pages()
	out := make([]engine.Page, len(pages))
	for i, p := range pages {
		out[i] = &pwPage{p: p}
	}
	return out
}

func (c *pwContext) Cookies(_ context.Context) ([]models.Cookie, error) {
	pwCookies, err := c.c.Cookies()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read cookies")
	}
	cookies := make([]models.Cookie, len(pwCookies))
	for i, ck := range pwCookies {
		sameSite := ""
		if ck.SameSite != nil {
			sameSite = string(*ck.SameSite)
		}
		cookies[i] = models.Cookie{
			Name:     ck.Name,
			Value:    ck.Value,
			Domain:   ck.Domain,
			Path:     ck.Path,
			Expires:  ck.Expires,
			HTTPOnly: ck.HttpOnly,
			Secure:   ck.Secure,
			SameSite: sameSite,
		}
	}
	return cookies, nil
}

func (c *pwContext) AddCookies(_ context.Context, cookies []models.Cookie) error {
	pwCookies := make([]playwright.OptionalCookie, 0, len(cookies))
	for _, ck := range cookies {
		pwCookie := playwright.OptionalCookie{
			Name:     ck.Name,
			Value:    ck.Value,
			SameSite: sameSiteAttr(ck.SameSite),
		}
		if ck.Domain != "" {
			pwCookie.Domain = playwright.String(ck.Domain)
		}
		if ck.Path != "" {
			pwCookie.Path = playwright.String(ck.Path)
		}
		if ck.Expires > 0 {
			pwCookie.Expires = playwright.Float(ck.Expires)
		}
		if ck.HTTPOnly {
			pwCookie.HttpOnly = playwright.Bool(true)
		}
		if ck.Secure {
			pwCookie.Secure = playwright.Bool(true)
		}
		pwCookies = append(pwCookies, pwCookie)
	}
	return errors.Wrap(c.c.AddCookies(pwCookies), "failed to restore cookies")
}

func (c *pwContext) Close(_ context.Context) error {
	return c.c.Close()
}

func sameSiteAttr(v string) *playwright.SameSiteAttribute {
	switch v {
	case "Strict":
		return playwright.SameSiteAttributeStrict
	case "Lax":
		return playwright.SameSiteAttributeLax
	case "None":
		return playwright.SameSiteAttributeNone
	default:
		return nil
	}
}

type pwPage struct {
	p playwright.Page
}

func (p *pwPage) Navigate(_ context.Context, url string) error {
	_, err := p.p.Goto(url)
	return errors.Wrapf(err, "failed to navigate to %s", url)
}

func (p *pwPage) URL() string {
	return p.p.URL()
}

func (p *pwPage) Evaluate(_ context.Context, script string) (interface{}, error) {
	return p.p.Evaluate(script)
}

func (p *pwPage) OnConsole(fn func(engine.ConsoleEntry)) {
	p.p.OnConsole(func(msg playwright.ConsoleMessage) {
		level := models.LogLevelLog
		if msg.Type() == "error" {
			level = models.LogLevelError
		}
		fn(engine.ConsoleEntry{Level: level, Text: msg.Text()})
	})
}

func (p *pwPage) OnPageError(fn func(error)) {
	p.p.OnPageError(fn)
}

func (p *pwPage) Close(_ context.Context) error {
	return p.p.Close()
}
