package scanner

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
)

type failingRow struct{ err error }

func (r failingRow) Scan(dest ...interface{}) error { return r.err }

func TestScanSkincareProfile_PropagatesNoRows(t *testing.T) {
	_, err := ScanSkincareProfile(failingRow{err: pgx.ErrNoRows})
	if !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("err = %v, want pgx.ErrNoRows", err)
	}
}

func TestScanSkincareProfile_PropagatesOtherErrors(t *testing.T) {
	boom := errors.New("connection reset by peer")

	_, err := ScanSkincareProfile(failingRow{err: boom})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		t.Error("database failure must not look like a missing row")
	}
}
