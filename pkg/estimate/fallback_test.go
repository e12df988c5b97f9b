package estimate_test

import (
	"strings"
	"testing"

	"github.com/AnishD4/StudyTide/pkg/estimate"
)

func TestFallbackMinutes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{
			name: "Empty text floors at 30",
			text: "",
			want: 30,
		},
		{
			name: "Whitespace only floors at 30",
			text: "   \n\t ",
			want: 30,
		},
		{
			// 6 words -> 30 + 12 = 42 -> rounds to 40
			name: "Short description",
			text: "Essay on the French Revolution draft",
			want: 40,
		},
		{
			// 7 words -> 30 + 14 = 44 -> rounds to 45
			name: "Seven words",
			text: "Essay on the French Revolution 5 pages",
			want: 45,
		},
		{
			// 300 words -> 30 + 600 = 630 -> capped at 480
			name: "Long description capped at 480",
			text: strings.Repeat("word ", 300),
			want: 480,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := estimate.FallbackMinutes(tt.text)
			if got != tt.want {
				t.Errorf("FallbackMinutes(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestFallbackMinutes_Properties(t *testing.T) {
	inputs := []string{
		"",
		"one",
		"read chapter 4",
		strings.Repeat("lorem ipsum ", 50),
		strings.Repeat("x ", 1000),
	}

	for _, text := range inputs {
		got := estimate.FallbackMinutes(text)

		if got < 30 || got > 480 {
			t.Errorf("FallbackMinutes(%d words) = %d, outside [30,480]", len(strings.Fields(text)), got)
		}
		if got%5 != 0 {
			t.Errorf("FallbackMinutes(%d words) = %d, not a multiple of 5", len(strings.Fields(text)), got)
		}
		if again := estimate.FallbackMinutes(text); again != got {
			t.Errorf("FallbackMinutes not deterministic: %d then %d", got, again)
		}
	}
}
