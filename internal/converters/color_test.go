package converters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"six digit hex", "#4FB9FF", "#4fb9ff"},
		{"eight digit hex drops alpha", "#4fb9ffff", "#4fb9ff"},
		{"three digit hex", "#f0a", "#ff00aa"},
		{"four digit hex", "#f0a8", "#ff00aa"},
		{"bare hex", "00ff00", "#00ff00"},
		{"rgb function", "rgb(255, 66, 198)", "#ff42c6"},
		{"rgba function", "rgba(111,207,151,0.5)", "#6fcf97"},
		{"rgb percentages", "rgb(100%, 0%, 0%)", "#ff0000"},
		{"rgb space separated", "rgb(0 0 255 / 50%)", "#0000ff"},
		{"rgb clamps", "rgb(300, -5, 0)", "#ff0000"},
		{"named", "Tomato", "#ff6347"},
		{"named aliceblue", "aliceblue", "#f0f8ff"},
		{"named darkorange", "DarkOrange", "#ff8c00"},
		{"named mediumseagreen", "mediumseagreen", "#3cb371"},
		{"named lightgoldenrodyellow", "lightgoldenrodyellow", "#fafad2"},
		{"named rebeccapurple", "rebeccapurple", "#663399"},
		{"empty falls back", "", "#123456"},
		{"whitespace falls back", "   ", "#123456"},
		{"garbage falls back", "not-a-color", "#123456"},
		{"bad rgb falls back", "rgb(1,2)", "#123456"},
		{"bad hex falls back", "#12345", "#123456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeColor(tt.input, "#123456"))
		})
	}
}
