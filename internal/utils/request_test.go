package utils

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("valid body", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Amina"}`))

		var p payload
		if err := DecodeJSON(r, &p); err != nil {
			t.Fatalf("DecodeJSON() error = %v", err)
		}
		if p.Name != "Amina" {
			t.Errorf("Name = %q, want %q", p.Name, "Amina")
		}
	})

	t.Run("empty body returns EOF", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/", strings.NewReader(""))

		var p payload
		err := DecodeJSON(r, &p)
		if !errors.Is(err, io.EOF) {
			t.Fatalf("DecodeJSON() error = %v, want io.EOF", err)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Amina","extra":1}`))

		var p payload
		if err := DecodeJSON(r, &p); err == nil {
			t.Fatal("DecodeJSON() error = nil, want unknown field error")
		}
	})

	t.Run("malformed body rejected", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":`))

		var p payload
		err := DecodeJSON(r, &p)
		if err == nil || errors.Is(err, io.EOF) {
			t.Fatalf("DecodeJSON() error = %v, want a non-EOF decode error", err)
		}
	})
}
