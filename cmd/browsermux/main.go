package main

import (
	"github.com/joho/godotenv"

	"github.com/browsermux/browsermux/pkg/app"
)

const appName = "browsermux"

var (
	GitSha = "unknown"
	GitRef = "unknown"
)

func main() {
	_ = godotenv.Load()
	app.Run(GitRef, GitSha, appName)
}
