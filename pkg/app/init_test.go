package app

import (
	"os"
	"testing"

	. "github.com/onsi/gomega"
	"go.uber.org/zap/zaptest"

	"github.com/browsermux/browsermux/mocks"
	"github.com/browsermux/browsermux/pkg/config"
)

var profData = []byte("mobile:\n  kind: chromium\n")

func Test_loadProfilesConfig_local(t *testing.T) {
	InitLog = zaptest.NewLogger(t).Sugar()
	g := NewWithT(t)

	c := new(mocks.Config)
	dir := t.TempDir()
	profFile := dir + "/profiles.yaml"
	err := os.WriteFile(profFile, profData, 0644)
	g.Expect(err).ToNot(HaveOccurred())

	c.EXPECT().ProfilesURI().Return(profFile).Once()
	got := loadProfilesConfig(c)

	g.Expect(got).To(Equal(profData))
	c.AssertExpectations(t)
}

func Test_loadProfilesConfig_missing(t *testing.T) {
	InitLog = zaptest.NewLogger(t).Sugar()
	g := NewWithT(t)

	c := new(mocks.Config)
	c.EXPECT().ProfilesURI().Return(t.TempDir() + "/nonexistent.yaml").Once()
	got := loadProfilesConfig(c)

	g.Expect(got).To(BeNil())
	c.AssertExpectations(t)
}

func Test_listen(t *testing.T) {
	g := NewWithT(t)

	c := new(mocks.Config)
	c.EXPECT().Listen().Return(":9999").Once()
	g.Expect(listen(c)).To(Equal(":9999"))

	c.EXPECT().Listen().Return("").Once()
	g.Expect(listen(c)).To(Equal(config.DefaultListen))

	c.AssertExpectations(t)
}
