package providers

import "testing"

func TestNormalizePositionExactCodes(t *testing.T) {
	cases := map[string]string{
		"LW": "LW",
		"RW": "RW",
		"C":  "C",
		"D":  "D",
		"G":  "G",
		"L":  "LW",
		"R":  "RW",
		"ld": "LD",
		"rd": "RD",
	}
	for raw, expected := range cases {
		if got := NormalizePosition(raw); got != expected {
			t.Fatalf("%q expected %s, got %s", raw, expected, got)
		}
	}
}

func TestNormalizePositionSubstringRules(t *testing.T) {
	cases := map[string]string{
		"Goalie":        "G",
		"Goaltender":    "G",
		"Left Wing":     "LW",
		"Right Wing":    "RW",
		"Right Defense": "RD",
		"Left Defense":  "LD",
		"Center":        "C",
		"Centre":        "C",
		"Defense":       "D",
		"Defenceman":    "D",
	}
	for raw, expected := range cases {
		if got := NormalizePosition(raw); got != expected {
			t.Fatalf("%q expected %s, got %s", raw, expected, got)
		}
	}
}

func TestNormalizePositionFallsBackToForward(t *testing.T) {
	for _, raw := range []string{"GARBAGE", "", "Wing", "F"} {
		if got := NormalizePosition(raw); got != "F" {
			t.Fatalf("%q expected F, got %s", raw, got)
		}
	}
}

func TestIsStaffPosition(t *testing.T) {
	staff := []string{"Head Coach", "General Manager", "Equipment Manager", "Athletic Trainer", "Director of Hockey Ops", "Video Coordinator"}
	for _, role := range staff {
		if !IsStaffPosition(role) {
			t.Fatalf("expected %q to be staff", role)
		}
	}
	for _, role := range []string{"Left Wing", "Goalie", "C"} {
		if IsStaffPosition(role) {
			t.Fatalf("expected %q not to be staff", role)
		}
	}
}
