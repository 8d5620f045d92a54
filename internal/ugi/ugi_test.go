package ugi

import (
	"bytes"
	"strings"
	"testing"
)

func TestUgiHandshake(t *testing.T) {
	var out bytes.Buffer
	e := New(DefaultOptions(), &out)
	e.Dispatch("ugi")

	got := out.String()
	if !strings.Contains(got, "id name "+EngineName) {
		t.Errorf("missing id name line: %q", got)
	}
	if !strings.Contains(got, "id author "+AuthorName) {
		t.Errorf("missing id author line: %q", got)
	}
	if !strings.HasSuffix(strings.TrimRight(got, "\n"), "ugiok") {
		t.Errorf("expected ugiok as final line: %q", got)
	}
}

func TestIsReady(t *testing.T) {
	var out bytes.Buffer
	e := New(DefaultOptions(), &out)
	e.Dispatch("isready")
	if strings.TrimSpace(out.String()) != "readyok" {
		t.Errorf("got %q, want readyok", out.String())
	}
}

func TestQueryP1TurnAtStart(t *testing.T) {
	var out bytes.Buffer
	e := New(DefaultOptions(), &out)
	e.Dispatch("query p1turn")
	if strings.TrimSpace(out.String()) != "response true" {
		t.Errorf("got %q, want response true", out.String())
	}
}

func TestQueryGameoverAtStart(t *testing.T) {
	var out bytes.Buffer
	e := New(DefaultOptions(), &out)
	e.Dispatch("query gameover")
	if strings.TrimSpace(out.String()) != "response false" {
		t.Errorf("got %q, want response false", out.String())
	}
}

func TestQueryResultAtStart(t *testing.T) {
	var out bytes.Buffer
	e := New(DefaultOptions(), &out)
	e.Dispatch("query result")
	if strings.TrimSpace(out.String()) != "response none" {
		t.Errorf("got %q, want response none", out.String())
	}
}

func TestGoPerftDepthOne(t *testing.T) {
	var out bytes.Buffer
	e := New(DefaultOptions(), &out)
	e.Dispatch("go perft 1")
	got := out.String()
	if !strings.Contains(got, "info perft depth 1 result 186") {
		t.Errorf("got %q, want a line reporting result 186 at depth 1", got)
	}
}

func TestPositionStartposThenQueryFen(t *testing.T) {
	var out bytes.Buffer
	opts := DefaultOptions()
	opts.UseBook = false
	e := New(opts, &out)

	e.Dispatch("position startpos")
	e.Dispatch("query fen")
	if out.Len() == 0 {
		t.Fatal("expected a response to query fen")
	}
}

func TestUnknownCommandReportsError(t *testing.T) {
	var out bytes.Buffer
	e := New(DefaultOptions(), &out)
	e.Dispatch("bogus")
	if !strings.Contains(out.String(), "info error") {
		t.Errorf("got %q, want an info error line", out.String())
	}
}
