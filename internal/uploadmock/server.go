// Package uploadmock emulates the upload endpoint of the ingestion pipeline.
// It is consumed by whatever transmits fixture files over HTTP; the generator
// itself never calls it.
package uploadmock

import (
	"io"
	"log"
	"net/http"
	"sync/atomic"
	"time"
)

const (
	DefaultEvery = 20
	DefaultDelay = 6 * time.Second
)

// Server accepts POSTed files at /pcap and answers with a fixed success
// response, except that every Every-th request is held for Delay before
// responding, simulating an upstream timeout. The request counter is owned by
// the server instance so multiple servers in one process do not share state.
type Server struct {
	Every  int           //delay cadence, <= 0 disables delays
	Delay  time.Duration //how long a delayed response is held
	Logger *log.Logger   //nil falls back to the standard logger

	counter atomic.Uint64 //not persisted, resets with the instance
}

// New creates a server with the given delay cadence. Pass DefaultEvery and
// DefaultDelay for the stock behavior.
func New(every int, delay time.Duration) *Server {
	return &Server{Every: every, Delay: delay}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/pcap" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	received := s.counter.Add(1)

	filename := r.Header.Get("X-Filename")
	if filename == "" {
		filename = "unknown"
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "reading upload failed", http.StatusBadRequest)
		return
	}
	s.logf("received file %q (%d bytes)", filename, len(body))

	if s.Every > 0 && received%uint64(s.Every) == 0 {
		s.logf("delaying response for file %q to simulate timeout", filename)
		time.Sleep(s.Delay)
	}

	w.WriteHeader(http.StatusOK)
	io.WriteString(w, "OK")
}

func (s *Server) logf(format string, values ...interface{}) {
	if s.Logger != nil {
		s.Logger.Printf(format, values...)
		return
	}
	log.Printf(format, values...)
}
