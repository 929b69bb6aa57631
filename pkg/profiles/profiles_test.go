package profiles

import (
	"net/http"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/browsermux/browsermux/pkg/models"
)

var testCatalog = []byte(`
default:
  kind: chromium
  viewport:
    width: 1920
    height: 1080
mobile:
  kind: webkit
  viewport:
    width: 390
    height: 844
  userAgent: "Mozilla/5.0 (iPhone)"
  locale: en-US
`)

func TestYamlCatalog_Resolve(t *testing.T) {
	g := NewWithT(t)
	cat, err := NewYamlCatalog(testCatalog)
	g.Expect(err).ToNot(HaveOccurred())

	got, err := cat.Resolve("mobile", models.Settings{})
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(got.Kind).To(Equal(models.EngineWebkit))
	g.Expect(got.Viewport.Width).To(Equal(390))
	g.Expect(got.UserAgent).To(Equal("Mozilla/5.0 (iPhone)"))
	g.Expect(got.Locale).To(Equal("en-US"))
}

func TestYamlCatalog_Resolve_RequestWins(t *testing.T) {
	g := NewWithT(t)
	cat, err := NewYamlCatalog(testCatalog)
	g.Expect(err).ToNot(HaveOccurred())

	got, err := cat.Resolve("mobile", models.Settings{
		Kind:   models.EngineFirefox,
		Locale: "de-DE",
	})
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(got.Kind).To(Equal(models.EngineFirefox))
	g.Expect(got.Locale).To(Equal("de-DE"))
	// unset fields still come from the profile
	g.Expect(got.UserAgent).To(Equal("Mozilla/5.0 (iPhone)"))
}

func TestYamlCatalog_Resolve_DefaultProfile(t *testing.T) {
	g := NewWithT(t)
	cat, err := NewYamlCatalog(testCatalog)
	g.Expect(err).ToNot(HaveOccurred())

	got, err := cat.Resolve("", models.Settings{})
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(got.Kind).To(Equal(models.EngineChromium))
	g.Expect(got.Viewport.Width).To(Equal(1920))
}

func TestYamlCatalog_Resolve_BuiltinDefaults(t *testing.T) {
	g := NewWithT(t)
	cat, err := NewYamlCatalog(nil)
	g.Expect(err).ToNot(HaveOccurred())

	got, err := cat.Resolve("", models.Settings{})
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(got.Kind).To(Equal(models.DefaultEngine))
	g.Expect(got.Viewport).To(Equal(&models.Viewport{Width: 1280, Height: 720}))
	g.Expect(got.IsHeadless()).To(BeTrue())
}

func TestYamlCatalog_Resolve_UnknownProfile(t *testing.T) {
	g := NewWithT(t)
	cat, err := NewYamlCatalog(testCatalog)
	g.Expect(err).ToNot(HaveOccurred())

	_, err = cat.Resolve("desktop", models.Settings{})
	g.Expect(err).To(HaveOccurred())

	var e models.ErrorWithCode
	g.Expect(errors.As(err, &e)).To(BeTrue())
	g.Expect(e.Code()).To(Equal(http.StatusNotFound))
}

func TestNewYamlCatalog_Invalid(t *testing.T) {
	g := NewWithT(t)

	_, err := NewYamlCatalog([]byte("{not yaml"))
	g.Expect(err).To(HaveOccurred())

	_, err = NewYamlCatalog([]byte("bad:\n  kind: netscape\n"))
	g.Expect(err).To(HaveOccurred())
}

func TestYamlCatalog_Names(t *testing.T) {
	g := NewWithT(t)
	cat, err := NewYamlCatalog(testCatalog)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(cat.Names()).To(ConsistOf("default", "mobile"))
}
