package main

import (
	"log"
	"os"
	"strings"

	"github.com/eringen/blogpilot"
)

func main() {
	cfg := blogpilot.Config{
		Name:          blogpilot.EnvOr("DASHBOARD_NAME", "Blogpilot"),
		Addr:          blogpilot.EnvOr("ADDR", ":4000"),
		BackendURL:    blogpilot.EnvOr("BACKEND_URL", "http://localhost:8000"),
		DatabasePath:  blogpilot.EnvOr("DATABASE_PATH", "data/dashboard.db"),
		SessionSecret: blogpilot.MustEnv("SESSION_SECRET"),
		CookieSecure:  strings.EqualFold(os.Getenv("COOKIE_SECURE"), "true"),
	}

	app := blogpilot.New(cfg)
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
