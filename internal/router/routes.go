package router

import "fmt"

const (
	APIPath = "/api/v1"

	SessionsPath = "/sessions"
	SessionParam = "sess"

	ResourcesPath = "/resources"
	LimitsPath    = "/limits"
	QueuePath     = "/queue"

	StorePath   = "/store"
	RecoverPath = "/recover"
	ExportPath  = "/export"
	ImportPath  = "/import"
	StatsPath   = "/stats"
)

func SessRoute(s string) string {
	return fmt.Sprintf(s, SessionParam)
}
