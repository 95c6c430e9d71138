// Command mockupload hosts the mock upload endpoint of the ingestion
// pipeline: POST /pcap with the file content as body and the filename in the
// X-Filename header. Every 20th request is delayed to simulate an upstream
// timeout.
package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/mah11/pcapgen/internal/uploadmock"
)

func main() {
	addr := flag.String("addr", ":8989", "listen address")
	every := flag.Int("every", uploadmock.DefaultEvery, "delay every Nth upload (0 disables delays)")
	delay := flag.Duration("delay", uploadmock.DefaultDelay, "how long a delayed response is held")
	flag.Parse()

	server := uploadmock.New(*every, *delay)
	log.Printf("mock upload endpoint listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, server))
}
