package models

import (
	"errors"
	"testing"
)

func TestFetchError_StatusMessage(t *testing.T) {
	err := &FetchError{Fandom: "Sherlock", Page: 3, StatusCode: 429}

	want := `fetch "Sherlock" page 3: unexpected status 429`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestFetchError_WrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	var err error = &FetchError{Fandom: "Star Trek", Page: 1, Err: cause}

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatal("errors.As should match *FetchError")
	}
	if fe.Page != 1 || fe.Fandom != "Star Trek" {
		t.Errorf("unexpected fields after As: %+v", fe)
	}
}
