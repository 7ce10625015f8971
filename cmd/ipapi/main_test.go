package main

import (
	"slices"
	"strings"
	"testing"
)

func TestParseFields_Basic(t *testing.T) {
	got := parseFields("country,city,isp")
	want := []string{"country", "city", "isp"}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestParseFields_TrimsAndDropsBlanks(t *testing.T) {
	got := parseFields(" country , ,city,")
	want := []string{"country", "city"}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestParseFields_Empty(t *testing.T) {
	if got := parseFields(""); got != nil {
		t.Errorf("expected nil for empty selection, got %v", got)
	}
}

func TestReadQueries(t *testing.T) {
	in := strings.NewReader("8.8.8.8\n\n# corporate ranges\n1.1.1.1\n  example.org  \n")

	queries, err := readQueries(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []string
	for _, q := range queries {
		got = append(got, q.Query)
	}
	want := []string{"8.8.8.8", "1.1.1.1", "example.org"}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestReadQueries_Empty(t *testing.T) {
	queries, err := readQueries(strings.NewReader("# only comments\n\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(queries) != 0 {
		t.Errorf("expected no queries, got %v", queries)
	}
}
