package main

import (
	"flag"
	"net/http"

	"gst-reconciliation/internal/api"
	"gst-reconciliation/internal/config"
)

func main() {
	addr := flag.String("addr", ":8080", "Listen address")
	flag.Parse()

	log := config.GetLogger()

	router := api.NewRouter(api.NewHandler())

	log.WithField("addr", *addr).Info("reconciliation server listening")
	if err := http.ListenAndServe(*addr, router); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
