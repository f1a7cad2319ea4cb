package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func testEvent() *Event {
	return &Event{
		Type:      EventHarvestCompleted,
		RunID:     "run-123",
		Timestamp: 1756166400,
		Data: HarvestData{
			Fandoms:    map[string]int{"Sherlock": 40},
			TotalWorks: 40,
			CSVPath:    "data/works.csv",
		},
	}
}

func TestDeliver_SignsBody(t *testing.T) {
	const secret = "s3cret"

	var (
		gotSig  string
		gotCT   string
		gotUA   string
		gotBody []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSig = r.Header.Get("X-Kudoscope-Signature")
		gotCT = r.Header.Get("Content-Type")
		gotUA = r.Header.Get("User-Agent")
		gotBody, _ = io.ReadAll(r.Body)
	}))
	t.Cleanup(srv.Close)

	if err := Deliver(context.Background(), srv.URL, secret, testEvent()); err != nil {
		t.Fatalf("Deliver: %v", err)
	}

	// The signature must cover the exact bytes the endpoint received.
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(gotBody)
	want := "sha256=" + hex.EncodeToString(mac.Sum(nil))
	if gotSig != want {
		t.Errorf("signature = %q, want %q", gotSig, want)
	}
	if gotCT != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotCT)
	}
	if gotUA != "Kudoscope-Webhook/1.0" {
		t.Errorf("User-Agent = %q, want Kudoscope-Webhook/1.0", gotUA)
	}

	var decoded Event
	if err := json.Unmarshal(gotBody, &decoded); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if decoded.Type != EventHarvestCompleted || decoded.RunID != "run-123" {
		t.Errorf("delivered event = %+v", decoded)
	}
}

func TestDeliver_NoSecretNoSignature(t *testing.T) {
	signed := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, signed = r.Header["X-Kudoscope-Signature"]
	}))
	t.Cleanup(srv.Close)

	if err := Deliver(context.Background(), srv.URL, "", testEvent()); err != nil {
		t.Fatalf("Deliver: %v", err)
	}
	if signed {
		t.Error("unsigned delivery must not carry a signature header")
	}
}

func TestDeliver_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	t.Cleanup(srv.Close)

	err := Deliver(context.Background(), srv.URL, "", testEvent())
	if err == nil || !strings.Contains(err.Error(), "status 400") {
		t.Errorf("error = %v, want a status 400 error", err)
	}
}

func TestDeliverWithRetry_FirstAttemptLands(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	t.Cleanup(srv.Close)

	if err := DeliverWithRetry(context.Background(), srv.URL, "", testEvent()); err != nil {
		t.Fatalf("DeliverWithRetry: %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("server saw %d deliveries, want 1", got)
	}
}

func TestDeliverWithRetry_ContextBoundsRetries(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	// The deadline expires during the wait before the second attempt, so the
	// sequence gives up without sleeping out the full backoff ladder.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := DeliverWithRetry(ctx, srv.URL, "", testEvent())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want context.DeadlineExceeded", err)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("server saw %d deliveries, want 1 before the deadline expired", got)
	}
}
