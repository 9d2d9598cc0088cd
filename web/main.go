package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jtay/glowcube/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	webServer := server.NewServer(*port)

	log.Printf("glowcube preview server")
	log.Printf("Try http://localhost:%d/render?pitch=0.2&yaw=-0.3&led=green", *port)

	if err := webServer.Start(ctx); err != nil {
		log.Printf("Error running server: %v", err)
		os.Exit(1)
	}
}
