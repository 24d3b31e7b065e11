package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"gohttpd/internal/config"
	"gohttpd/internal/console"
	"gohttpd/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		console.Logf("fatal: %v", err)
		os.Exit(1)
	}

	srv, err := server.Serve(cfg)
	if err != nil {
		console.Logf("fatal: could not start server: %v", err)
		os.Exit(1)
	}
	defer srv.Close()

	console.Logf("%s listening on %s, serving %s", cfg.Server.Name, srv.Addr(), cfg.Files.Root)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	console.Logf("server stopped")
}
