package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-phong-raytracer/pkg/config"
	"github.com/df07/go-phong-raytracer/pkg/publish"
	"github.com/df07/go-phong-raytracer/web/server"
)

func main() {
	// Parse command line flags
	envFile := flag.String("env", ".env", "Optional environment file")
	addr := flag.String("addr", "", "Address to serve on (overrides SERVER_ADDRESS)")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *addr != "" {
		cfg.ServerAddress = *addr
	}

	var uploader *publish.Uploader
	if cfg.UploadEnabled() {
		if uploader, err = publish.NewS3Uploader(cfg.S3, nil); err != nil {
			log.Fatalf("Failed to create S3 uploader: %v", err)
		}
		log.Printf("Uploads enabled to bucket %s", cfg.S3.Bucket)
	}

	webServer := server.NewServer(cfg, uploader)

	log.Printf("Phong Raytracer Web Server")
	log.Printf("Serving scenes from %s", cfg.ScenesDir)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
