package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/laingsimon/courage-scores/internal/app"
)

func main() {
	var addr string
	flag.StringVar(&addr, "addr", "", "listen address (overrides ADDR)")
	flag.Parse()

	application, err := app.New()
	if err != nil {
		fmt.Printf("init app: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	application.Start()

	if addr == "" {
		addr = application.Cfg.Addr
	}
	application.Log.Info("Starting server", "addr", addr)
	if err := application.Run(addr); err != nil {
		application.Log.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}
