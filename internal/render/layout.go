// Package render lays out and builds the profile card and error documents.
package render

// Card geometry, in SVG user units.
const (
	CanvasWidth  = 600
	MinHeight    = 400
	BottomMargin = 40

	InfoX          = 50
	InfoY          = 110
	InfoLeading    = 5
	InfoLineHeight = 18

	LangGap     = 10
	LangX       = 50
	LangSpacing = 110
	MaxLangs    = 5

	CardGap       = 50
	CardX         = 50
	CardWidth     = 100
	CardHeight    = 60
	CardColumnGap = 20
	CardRowGap    = 15
	CardsPerRow   = 3

	ErrorWidth  = 600
	ErrorHeight = 200
)

// Layout holds the vertical offsets derived from the number of info lines and stat cards.
type Layout struct {
	InfoLines int
	Cards     int
	LangY     int
	CardY     int
	Rows      int
	Height    int
}

// ComputeLayout places the language row below the info block and the stat grid below the
// language row. infoLines counts every info line, the member-since line included.
func ComputeLayout(infoLines, cards int) Layout {
	langY := InfoY + infoLines*InfoLineHeight + LangGap
	cardY := langY + CardGap
	rows := (cards + CardsPerRow - 1) / CardsPerRow

	gridHeight := 0
	if rows > 0 {
		gridHeight = rows*CardHeight + (rows-1)*CardRowGap
	}
	return Layout{
		InfoLines: infoLines,
		Cards:     cards,
		LangY:     langY,
		CardY:     cardY,
		Rows:      rows,
		Height:    max(MinHeight, cardY+gridHeight+BottomMargin),
	}
}

// InfoLineY is the baseline of the i-th info line.
func (l Layout) InfoLineY(i int) int {
	return InfoY + InfoLeading + i*InfoLineHeight
}

// LanguageX is the left edge of the i-th language entry.
func (l Layout) LanguageX(i int) int {
	return LangX + i*LangSpacing
}

// CardOrigin is the top-left corner of the i-th stat card.
func (l Layout) CardOrigin(i int) (x, y int) {
	row, col := i/CardsPerRow, i%CardsPerRow
	return CardX + col*(CardWidth+CardColumnGap), l.CardY + row*(CardHeight+CardRowGap)
}
