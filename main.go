/* main.go
 * The "main" method for running the bracket challenge service. Loads config
 * from .env and flags, wires the API facade to the HTTP surface, and runs
 * the sync scheduler. One-shot admin modes (-seed, -backfillTitles) run and
 * exit without starting the server
 * Usage: go run main.go -addr=":8080" -season=2025 -syncInterval=15m
 */

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	api "cfp-bracket/api/api"
	"cfp-bracket/api/seed"
	"cfp-bracket/bot"
	"cfp-bracket/web"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded:", err)
	}

	// Flags
	addrPtr := flag.String("addr", envOr("ADDR", ":8080"), "Address for the HTTP server to listen on")
	seasonPtr := flag.Int("season", time.Now().Year(), "Season year to sync postseason games for")
	syncIntervalPtr := flag.Duration("syncInterval", 0, "Interval between scheduled sync runs, e.g. 15m. 0 disables the scheduler")
	seedPtr := flag.String("seed", "", "Path to a fixture file of game results to upsert, then exit")
	backfillPtr := flag.Bool("backfillTitles", false, "Re-derive bowl titles on stored predictions, then exit")
	flag.Parse()

	a, err := api.NewAPI(
		envOr("DB_NAME", "cfp_bracket"),
		os.Getenv("MONGO_URI"),
		os.Getenv("CFB_API_URL"),
		os.Getenv("CFB_API_KEY"),
		*seasonPtr,
	)
	if err != nil {
		log.Fatalf("failed to initialize API: %v", err)
	}
	defer func() {
		if err := a.Store.GetClient().Disconnect(context.TODO()); err != nil {
			log.Println("failed to disconnect from database:", err)
		}
	}()

	// One-shot admin modes
	if *seedPtr != "" {
		results, err := seed.LoadFile(*seedPtr)
		if err != nil {
			log.Fatalf("seed failed: %v", err)
		}
		applied, err := seed.Apply(a.Store, results)
		if err != nil {
			log.Fatalf("seed failed after %d results: %v", applied, err)
		}
		log.Printf("seeded %d game results", applied)
		return
	}
	if *backfillPtr {
		updated, err := a.BackfillTitles()
		if err != nil {
			log.Fatalf("backfill failed after %d predictions: %v", updated, err)
		}
		log.Printf("backfilled titles on %d predictions", updated)
		return
	}

	// Optional Discord announcer for scheduled sync results
	var announcer *bot.Announcer
	if token := os.Getenv("DISCORD_TOKEN"); token != "" {
		announcer, err = bot.NewAnnouncer(token, os.Getenv("DISCORD_CHANNEL_ID"))
		if err != nil {
			log.Println("announcer disabled:", err)
			announcer = nil
		}
	}

	if *syncIntervalPtr > 0 {
		go runScheduler(a, announcer, *syncIntervalPtr)
	}

	err = web.Start(web.Config{
		Addr:       *addrPtr,
		API:        a,
		SyncSecret: os.Getenv("SYNC_SECRET"),
	})
	if err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

// runScheduler drives the sync job at a fixed interval. Runs happen one at
// a time from this goroutine, which is the serialization the job requires;
// a failed run is logged and retried on the next tick, never sooner
func runScheduler(a *api.API, announcer *bot.Announcer, interval time.Duration) {
	log.Printf("sync scheduler running every %s", interval)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		report, err := a.Sync(context.Background())
		if err != nil {
			log.Println("scheduled sync failed:", err)
			continue
		}
		if announcer == nil {
			continue
		}
		board, err := a.Leaderboard(1, 5)
		if err != nil {
			log.Println("leaderboard fetch for announcement failed:", err)
			continue
		}
		if err := announcer.AnnounceSync(report, board); err != nil {
			log.Println(err)
		}
	}
}

// envOr reads an environment variable with a fallback default
func envOr(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
