package main

import (
	"flag"
	"log"
	"os"

	"github.com/dglen/go-whitted-raytracer/pkg/renderer"
	"github.com/dglen/go-whitted-raytracer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()

	webServer := server.NewServer(*port, renderer.NewDefaultLogger())

	log.Printf("Whitted Raytracer Web Server")
	log.Printf("Render via http://localhost:%d/api/render?scene=default", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
