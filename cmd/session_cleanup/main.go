package main

import (
	"context"
	"log"
	"time"

	"eventdesk/internal/config"
	"eventdesk/internal/database"
	"eventdesk/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	sessions := repository.NewSessionRepository(db)

	cutoff := time.Now().Add(-cfg.SessionTTL)
	deleted, err := sessions.DeleteOlderThan(context.Background(), cutoff)
	if err != nil {
		log.Fatalf("session cleanup failed: %v", err)
	}

	log.Printf("session cleanup completed: deleted=%d cutoff=%s", deleted, cutoff.Format(time.RFC3339))
}
