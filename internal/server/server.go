// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"

	"github.com/Sanjay120304/find-fit-careers-5c518438/internal/auth"
	"github.com/Sanjay120304/find-fit-careers-5c518438/internal/database"
)

// MyServer contains the port which server is running on, the database
// instance and the revoked-token store.
type MyServer struct {
	port int

	DB        *database.DBinstanceStruct
	Blacklist auth.JwtBlacklistStore
}

// NewServer construct new http.Server instance
func NewServer() *http.Server {
	port, _ := strconv.Atoi(os.Getenv("PORT"))

	db, err := database.GetMainDB()
	if err != nil {
		log.Fatalf("Database failed to initialized: %s", err)
	}

	s := &MyServer{
		port:      port,
		DB:        db,
		Blacklist: newBlacklistStore(),
	}

	// Declare Server config
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server
}

// newBlacklistStore picks the Redis-backed store when REDIS_ADDR is set and
// falls back to the in-memory one otherwise.
func newBlacklistStore() auth.JwtBlacklistStore {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return auth.NewInMemoryBlacklistStore()
	}

	store, err := auth.NewRedisBlacklistStore(addr, os.Getenv("REDIS_PASSWORD"))
	if err != nil {
		log.Printf("Redis blacklist store unavailable, falling back to in-memory: %s", err)
		return auth.NewInMemoryBlacklistStore()
	}
	return store
}
