package gate

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestDBProberAvailable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("SELECT 1").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	prober := &DB{DB: db}
	if !prober.Available(context.Background()) {
		t.Fatalf("expected available")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestDBProberSwallowsFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("SELECT 1").WillReturnError(errors.New("connection refused"))

	prober := &DB{DB: db}
	if prober.Available(context.Background()) {
		t.Fatalf("expected unavailable on query error")
	}
}

func TestDBProberNilPool(t *testing.T) {
	var prober *DB
	if prober.Available(context.Background()) {
		t.Fatalf("nil prober must read unavailable")
	}
	if (&DB{}).Available(context.Background()) {
		t.Fatalf("prober without pool must read unavailable")
	}
}

func TestFetchLiveWins(t *testing.T) {
	result := Fetch(context.Background(), Static(true),
		func(context.Context) (string, error) { return "live", nil },
		func() string { return "fallback" },
	)
	if result.Demo || result.Value != "live" {
		t.Fatalf("expected live value, got %+v", result)
	}
}

func TestFetchLiveErrorFallsBack(t *testing.T) {
	result := Fetch(context.Background(), Static(true),
		func(context.Context) (string, error) { return "", errors.New("broken pipe") },
		func() string { return "fallback" },
	)
	if !result.Demo || result.Value != "fallback" {
		t.Fatalf("expected fallback on live error, got %+v", result)
	}
}

func TestFetchUnavailableSkipsLive(t *testing.T) {
	called := false
	result := Fetch(context.Background(), Static(false),
		func(context.Context) (string, error) {
			called = true
			return "live", nil
		},
		func() string { return "fallback" },
	)
	if called {
		t.Fatalf("live path must not run when the gate is shut")
	}
	if !result.Demo || result.Value != "fallback" {
		t.Fatalf("expected fallback, got %+v", result)
	}
}

func TestFetchNilProber(t *testing.T) {
	result := Fetch(context.Background(), nil,
		func(context.Context) (int, error) { return 1, nil },
		func() int { return 2 },
	)
	if !result.Demo || result.Value != 2 {
		t.Fatalf("nil prober must fall back, got %+v", result)
	}
}
