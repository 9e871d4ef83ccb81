// Command touropt-server serves the tour improver over HTTP.
//
// Usage:
//
//	touropt-server [-addr :8080] [-db path/to/solutions.db] [-threads 4]
//
// With -db set, every solve is recorded and listed at GET /solutions.
package main

import (
	"flag"
	"log"
	"net/http"
	"runtime"

	"github.com/kvolkov/touropt/server"
	"github.com/kvolkov/touropt/solstore"
)

func main() {
	var (
		addr    = flag.String("addr", ":8080", "listen address")
		dbPath  = flag.String("db", "", "SQLite solution store path (empty disables persistence)")
		threads = flag.Int("threads", runtime.GOMAXPROCS(0), "default worker count per solve")
	)
	flag.Parse()

	var (
		store *solstore.Store
		err   error
	)
	if *dbPath != "" {
		store, err = solstore.Open(*dbPath)
		if err != nil {
			log.Fatalf("open solution store: %v", err)
		}
		defer store.Close()
		log.Printf("solution store: %s", *dbPath)
	}

	srv := server.New(store, *threads)

	log.Printf("listening on %s (default threads: %d)", *addr, *threads)
	log.Fatal(http.ListenAndServe(*addr, srv.Router()))
}
