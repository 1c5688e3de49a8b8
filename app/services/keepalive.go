package services

import (
	"database/sql"
	"log"
	"time"
)

// StartKeepAlive pings the database every five minutes so pooled
// connections do not go stale behind aggressive network middleboxes.
func StartKeepAlive(db *sql.DB) {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			if err := db.Ping(); err != nil {
				log.Printf("Keep-alive ping failed: %v", err)
			}
		}
	}()
}
