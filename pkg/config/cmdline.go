package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
)

func ParseCmdLine(f *pflag.FlagSet, args []string) (*pflag.FlagSet, bool, error) {
	help := f.BoolP("help", "h", false, "Show usage help")
	f.String(listen, DefaultListen, "Listening address and/or port")
	f.Duration(shutdownTimeout, 30*time.Second, "Grace period for draining in-flight requests on shutdown")

	f.String(dataDir, "data/sessions", "Directory for persisted session state")
	f.String(profilesURI, defaultProfilesURI, "Path to session profiles YAML config file")
	f.String(defaultSession, DefaultSessionName, "Identifier of the implicit default session")
	f.Duration(createTimeout, 3*time.Minute, "Timeout for create session requests")
	f.Bool(recoverOnStartup, false, "Recover persisted sessions on startup")
	f.Int(eventBufferSize, 1024, "Buffer size of the session event channel")

	f.Int(maxInstances, 2, "Limit for simultaneously running browser instances, 0 to disable the limit")
	f.Int(maxPerUser, 0, "Limit for browser instances owned by a single user, 0 to disable the limit")
	f.Int(maxSessions, 10, "Limit for registered sessions, 0 to disable the limit")
	f.Int(queueSize, 25, "Queue size for requests waiting for an available instance, if set to 0, queue is disabled")
	f.Duration(queueTimeout, time.Minute, "Timeout to wait for an available instance (when queue is enabled)")
	f.Duration(idleTimeout, 10*time.Minute, "Idle time after which a session is eligible for cleanup")
	f.Int(memoryLimitMB, 0, "Memory usage threshold in MB that triggers a warning, 0 to disable")
	f.Bool(autoCleanup, false, "Close idle sessions automatically on the cleanup interval")
	f.Duration(cleanupInterval, time.Minute, "Interval between usage reports and idle sweeps, 0 to disable")

	if err := f.Parse(args); err != nil {
		return nil, true, err
	}
	if *help {
		_, _ = fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		f.PrintDefaults()
		return nil, true, nil
	}

	return f, false, nil
}
