package main

import "testing"

func TestParseTopArgs(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantKind  string
		wantBoard string
		wantErr   bool
	}{
		{"no args", nil, "anime", "all", false},
		{"kind only", []string{"manga"}, "manga", "all", false},
		{"anime kind only", []string{"anime"}, "anime", "all", false},
		{"board only", []string{"airing"}, "anime", "airing", false},
		{"kind and board", []string{"manga", "bypopularity"}, "manga", "bypopularity", false},
		{"mixed case", []string{"Manga", "Favorite"}, "manga", "favorite", false},
		{"bad kind with board", []string{"books", "all"}, "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, board, err := parseTopArgs(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if kind != tt.wantKind || board != tt.wantBoard {
				t.Errorf("got %s/%s, want %s/%s", kind, board, tt.wantKind, tt.wantBoard)
			}
		})
	}
}
