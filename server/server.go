// Package server exposes the tour improver over HTTP.
//
// Endpoints:
//
//	POST /solve      — coordinates via ?loc=lat,lon&loc=… or a JSON body
//	                   {"locations": [[lat,lon],…], "threads": k};
//	                   responds with the improved tour, costs, gains and
//	                   per-phase timings.
//	GET  /solutions  — recent solve records (requires a configured store).
//	GET  /health     — liveness probe.
//
// The route table is bound to a gorilla/mux router; handlers are plain
// net/http funcs writing JSON.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/kvolkov/touropt/distmat"
	"github.com/kvolkov/touropt/loader"
	"github.com/kvolkov/touropt/localsearch"
	"github.com/kvolkov/touropt/solstore"
)

// recentLimit caps the /solutions listing.
const recentLimit = 50

// Server binds the solver pipeline to HTTP handlers.
type Server struct {
	store   *solstore.Store // optional; nil disables persistence
	threads int             // default worker count per solve
}

// New creates a Server. store may be nil; threads is the default worker
// count used when a request does not specify one.
func New(store *solstore.Store, threads int) *Server {
	if threads < 1 {
		threads = localsearch.DefaultOptions().Threads
	}

	return &Server{store: store, threads: threads}
}

// Router returns the bound route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter().StrictSlash(true)
	r.HandleFunc("/solve", s.Solve).Methods(http.MethodPost)
	r.HandleFunc("/solutions", s.Solutions).Methods(http.MethodGet)
	r.HandleFunc("/health", s.Health).Methods(http.MethodGet)

	return r
}

// solveRequest is the JSON body form of a solve call.
type solveRequest struct {
	// Locations holds [lat, lon] pairs in visiting-id order.
	Locations [][2]float64 `json:"locations"`
	// Threads optionally overrides the server default.
	Threads int `json:"threads,omitempty"`
}

// solveResponse reports one improvement run.
type solveResponse struct {
	Tour        []int `json:"tour"`
	InitialCost int64 `json:"initial_cost"`
	FinalCost   int64 `json:"final_cost"`
	TotalGain   int64 `json:"total_gain"`
	Rounds      int   `json:"rounds"`
	Threads     int   `json:"threads"`
	MatrixMs    int64 `json:"matrix_ms"`
	SearchMs    int64 `json:"search_ms"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Solve parses coordinates, builds the distance matrix, runs the local
// search from the identity tour and reports the result.
func (s *Server) Solve(w http.ResponseWriter, r *http.Request) {
	var (
		problem loader.Problem
		key     string
		threads = s.threads
		err     error
	)

	if raw := r.URL.RawQuery; raw != "" {
		// Query-string form: the raw query is the instance input.
		problem, err = loader.Parse(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		key = solstore.KeyFromInput(raw)
	} else {
		var req solveRequest
		if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid JSON body: %v", err)})
			return
		}
		if len(req.Locations) < 2 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: loader.ErrTooFewLocations.Error()})
			return
		}
		locs := make([]distmat.LatLon, len(req.Locations))
		for i, p := range req.Locations {
			locs[i] = distmat.LatLon{Lat: p[0], Lon: p[1]}
		}
		problem = loader.Problem{LatLon: locs}
		if req.Threads > 0 {
			threads = req.Threads
		}
		key = solstore.KeyFromInput(fmt.Sprintf("%v", req.Locations))
	}

	matrixStart := time.Now()
	m, err := problem.Matrix()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	matrixMs := time.Since(matrixStart).Milliseconds()

	n := problem.Size()
	seq := make([]int, n)
	for i := 0; i < n; i++ {
		seq[i] = i
	}

	searchStart := time.Now()
	search, err := localsearch.NewSearch(m, seq, localsearch.Options{Threads: threads})
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	initial := search.Cost()
	sum := search.Optimize()
	searchMs := time.Since(searchStart).Milliseconds()

	tour, err := search.Tour(0)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	resp := solveResponse{
		Tour:        tour,
		InitialCost: initial,
		FinalCost:   search.Cost(),
		TotalGain:   sum.TotalGain(),
		Rounds:      sum.Rounds,
		Threads:     search.Threads(),
		MatrixMs:    matrixMs,
		SearchMs:    searchMs,
	}

	if s.store != nil {
		rec := solstore.Record{
			Key:         key,
			Size:        n,
			Threads:     search.Threads(),
			InitialCost: initial,
			FinalCost:   search.Cost(),
			TotalGain:   sum.TotalGain(),
			Rounds:      sum.Rounds,
			Tour:        tour,
			MatrixMs:    matrixMs,
			SearchMs:    searchMs,
		}
		if err = s.store.Put(r.Context(), rec); err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// Solutions lists recent solve records.
func (s *Server) Solutions(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "no solution store configured"})
		return
	}

	recent, err := s.store.Recent(r.Context(), recentLimit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	if recent == nil {
		recent = []solstore.Record{}
	}

	writeJSON(w, http.StatusOK, recent)
}

// Health is a liveness probe.
func (s *Server) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON encodes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
