package config

import (
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"
)

func TestParseCmdLine(t *testing.T) {
	g := NewWithT(t)

	f := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f, exit, err := ParseCmdLine(f, []string{"--max-instances=4", "--auto-cleanup"})
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(exit).To(BeFalse())

	g.Expect(f.GetInt("max-instances")).To(Equal(4))
	g.Expect(f.GetBool("auto-cleanup")).To(BeTrue())
	g.Expect(f.GetString("default-session")).To(Equal(DefaultSessionName))
	g.Expect(f.GetDuration("queue-timeout")).To(Equal(time.Minute))
}

func TestParseCmdLine_Error(t *testing.T) {
	g := NewWithT(t)
	f := pflag.NewFlagSet("test", pflag.ContinueOnError)
	_, exit, err := ParseCmdLine(f, []string{"--nonexistent"})
	g.Expect(err).To(HaveOccurred())
	g.Expect(exit).To(BeTrue())
}

func TestParseCmdLine_Help(t *testing.T) {
	g := NewWithT(t)
	f := pflag.NewFlagSet("test", pflag.ContinueOnError)
	_, exit, err := ParseCmdLine(f, []string{"-h"})
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(exit).To(BeTrue())
}
