package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeLayout(t *testing.T) {
	testCases := []struct {
		name      string
		infoLines int
		cards     int
		expected  Layout
	}{
		{
			name:      "member-since only",
			infoLines: 1,
			cards:     5,
			expected:  Layout{InfoLines: 1, Cards: 5, LangY: 138, CardY: 188, Rows: 2, Height: 400},
		},
		{
			name:      "company and location",
			infoLines: 3,
			cards:     5,
			expected:  Layout{InfoLines: 3, Cards: 5, LangY: 174, CardY: 224, Rows: 2, Height: 400},
		},
		{
			name:      "three rows of cards outgrow the floor",
			infoLines: 3,
			cards:     7,
			// 224 + 3*60 + 2*15 + 40
			expected: Layout{InfoLines: 3, Cards: 7, LangY: 174, CardY: 224, Rows: 3, Height: 474},
		},
		{
			name:      "no cards",
			infoLines: 1,
			cards:     0,
			expected:  Layout{InfoLines: 1, Cards: 0, LangY: 138, CardY: 188, Rows: 0, Height: 400},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ComputeLayout(tc.infoLines, tc.cards))
		})
	}
}

func TestComputeLayout_InfoLineShiftsRows(t *testing.T) {
	for lines := 1; lines < 3; lines++ {
		before := ComputeLayout(lines, 5)
		after := ComputeLayout(lines+1, 5)
		assert.Equal(t, InfoLineHeight, after.LangY-before.LangY)
		assert.Equal(t, InfoLineHeight, after.CardY-before.CardY)
	}
}

func TestComputeLayout_HeightIsMonotonic(t *testing.T) {
	prev := 0
	for cards := 0; cards <= 30; cards++ {
		l := ComputeLayout(3, cards)
		assert.GreaterOrEqual(t, l.Height, prev)
		assert.GreaterOrEqual(t, l.Height, MinHeight)
		prev = l.Height
	}
}

func TestLayout_Positions(t *testing.T) {
	l := ComputeLayout(1, 5)

	assert.Equal(t, 115, l.InfoLineY(0))
	assert.Equal(t, 133, l.InfoLineY(1))
	assert.Equal(t, 50, l.LanguageX(0))
	assert.Equal(t, 490, l.LanguageX(4))

	origins := [][2]int{{50, 188}, {170, 188}, {290, 188}, {50, 263}, {170, 263}}
	for i, want := range origins {
		x, y := l.CardOrigin(i)
		assert.Equal(t, want, [2]int{x, y}, "card %d", i)
	}
}
