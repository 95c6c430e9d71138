package uploadmock

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func post(t *testing.T, url string, filename string, content string) (status int, body string, elapsed time.Duration) {
	request, err := http.NewRequest(http.MethodPost, url+"/pcap", strings.NewReader(content))
	if err != nil {
		t.Fatal(err)
	}
	if filename != "" {
		request.Header.Set("X-Filename", filename)
	}
	start := time.Now()
	response, err := http.DefaultClient.Do(request)
	elapsed = time.Since(start)
	if err != nil {
		t.Fatal(err)
	}
	defer response.Body.Close()
	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatal(err)
	}
	return response.StatusCode, string(raw), elapsed
}

func quietServer(every int, delay time.Duration) *Server {
	server := New(every, delay)
	server.Logger = log.New(io.Discard, "", 0)
	return server
}

func TestUploadAnswersOK(t *testing.T) {
	ts := httptest.NewServer(quietServer(0, 0))
	defer ts.Close()

	status, body, _ := post(t, ts.URL, "MAH11-20231114-221320.pcap", "pcap bytes")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if body != "OK" {
		t.Fatalf("expected body OK, got %q", body)
	}
}

func TestEveryNthUploadIsDelayed(t *testing.T) {
	const delay = 300 * time.Millisecond
	ts := httptest.NewServer(quietServer(3, delay))
	defer ts.Close()

	for i := 0; i < 2; i++ {
		if _, _, elapsed := post(t, ts.URL, "a.pcap", "x"); elapsed >= delay {
			t.Fatalf("request %d delayed unexpectedly (%s)", i+1, elapsed)
		}
	}
	if _, _, elapsed := post(t, ts.URL, "a.pcap", "x"); elapsed < delay {
		t.Fatalf("third request not delayed (%s)", elapsed)
	}
}

func TestCounterIsPerInstance(t *testing.T) {
	const delay = 300 * time.Millisecond
	first := httptest.NewServer(quietServer(2, delay))
	defer first.Close()
	second := httptest.NewServer(quietServer(2, delay))
	defer second.Close()

	if _, _, elapsed := post(t, first.URL, "a.pcap", "x"); elapsed >= delay {
		t.Fatal("first request to first server delayed")
	}
	//a shared counter would make this the overall second request and delay it
	if _, _, elapsed := post(t, second.URL, "a.pcap", "x"); elapsed >= delay {
		t.Fatal("first request to second server delayed, counter is shared")
	}
}

func TestMissingFilenameDefaultsToUnknown(t *testing.T) {
	var captured bytes.Buffer
	server := New(0, 0)
	server.Logger = log.New(&captured, "", 0)
	ts := httptest.NewServer(server)
	defer ts.Close()

	post(t, ts.URL, "", "x")
	if !strings.Contains(captured.String(), `"unknown"`) {
		t.Fatalf("filename fallback not logged: %q", captured.String())
	}
}

func TestRejectsOtherMethodsAndPaths(t *testing.T) {
	ts := httptest.NewServer(quietServer(0, 0))
	defer ts.Close()

	response, err := http.Get(ts.URL + "/pcap")
	if err != nil {
		t.Fatal(err)
	}
	response.Body.Close()
	if response.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("GET expected 405, got %d", response.StatusCode)
	}

	status, _, _ := post(t, ts.URL+"/other", "a.pcap", "x")
	if status != http.StatusNotFound {
		t.Fatalf("unknown path expected 404, got %d", status)
	}
}
