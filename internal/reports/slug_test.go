package reports

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Google", "google"},
		{"upper", "GOOGLE", "google"},
		{"spaces", "Acme Corp", "acme-corp"},
		{"symbol run collapses", "Twitter/X", "twitter-x"},
		{"mixed punctuation", "O'Brien & Sons, Inc.", "o-brien-sons-inc"},
		{"leading trailing stripped", "  Acme!  ", "acme"},
		{"digits kept", "Area 51 Labs", "area-51-labs"},
		{"empty", "", ""},
		{"symbols only", "!!!", ""},
		{"unicode folds to separator", "Café", "caf"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Slugify(tc.in); got != tc.want {
				t.Fatalf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{"Google", "Acme Corp", "Twitter/X", "snap-inc", ""}
	for _, in := range inputs {
		once := Slugify(in)
		if twice := Slugify(once); twice != once {
			t.Fatalf("Slugify not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}
