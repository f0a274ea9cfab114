package main

import (
	"log"

	"github.com/Sanjay120304/find-fit-careers-5c518438/internal/server"
)

// @title FindFitCareers API
// @version 1.0
// @description Job board backend: accounts, job posts, applications and companies.
// @BasePath /api/v1
func main() {
	srv := server.NewServer()

	log.Printf("Server listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("cannot start server: %s", err)
	}
}
