package normalize

import (
	"reflect"
	"testing"
)

func TestCleanArtists(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "single artist",
			text: "The Band",
			want: []string{"THE BAND"},
		},
		{
			name: "headliner with support",
			text: "The Band with Support Act",
			want: []string{"THE BAND", "SUPPORT ACT"},
		},
		{
			name: "uppercase WITH separator",
			text: "HEADLINER WITH OPENER",
			want: []string{"HEADLINER", "OPENER"},
		},
		{
			name: "ampersand separator",
			text: "Artist A & Artist B",
			want: []string{"ARTIST A", "ARTIST B"},
		},
		{
			name: "comma separated bill",
			text: "First, Second, Third",
			want: []string{"FIRST", "SECOND", "THIRD"},
		},
		{
			name: "lowercase and kept in name",
			text: "Florence and the Machine",
			want: []string{"FLORENCE AND THE MACHINE"},
		},
		{
			name: "quoted tour branding stripped",
			text: `The Band "THE PREVAIL TOUR"`,
			want: []string{"THE BAND"},
		},
		{
			name: "em dash suffix stripped",
			text: "The Band —XOXO Tour",
			want: []string{"THE BAND"},
		},
		{
			name: "dashed tour suffix stripped",
			text: "The Band - World Tour 2025",
			want: []string{"THE BAND"},
		},
		{
			name: "whitespace and newlines collapsed",
			text: "  The \n Band  ",
			want: []string{"THE BAND"},
		},
		{
			name: "empty",
			text: "",
			want: nil,
		},
		{
			name: "only noise",
			text: `"FAREWELL TOUR"`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanArtists(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CleanArtists(%q) = %#v, want %#v", tt.text, got, tt.want)
			}
		})
	}
}

// Cleaning an already-clean name must be a no-op so repeated ingestion
// produces stable dedup keys.
func TestCleanArtistsIdempotent(t *testing.T) {
	inputs := []string{
		"The Band with Support Act",
		"Artist A & Artist B",
		`Big Name "ANNIVERSARY TOUR" with Friends`,
		"Florence and the Machine",
	}

	for _, input := range inputs {
		first := CleanArtists(input)
		for _, name := range first {
			again := CleanArtists(name)
			if len(again) != 1 || again[0] != name {
				t.Errorf("CleanArtists(%q) = %#v, want [%q] (not idempotent)", name, again, name)
			}
		}
	}
}

func TestExtractCost(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "simple dollar", text: "Tickets $25", want: "$25"},
		{name: "cents", text: "$25.00 advance", want: "$25.00"},
		{name: "range", text: "$15-$25 at the door", want: "$15-$25"},
		{name: "free", text: "This show is FREE", want: "FREE"},
		{name: "no cover", text: "21+ No Cover", want: "No Cover"},
		{name: "tbd", text: "Price TBD", want: "TBD"},
		{name: "nothing", text: "doors at 8", want: ""},
		{name: "empty", text: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractCost(tt.text); got != tt.want {
				t.Errorf("ExtractCost(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
