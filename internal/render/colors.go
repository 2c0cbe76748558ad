package render

// DefaultLanguageColor is used for languages missing from languageColors.
const DefaultLanguageColor = "#6B7280"

var languageColors = map[string]string{
	"JavaScript": "#F7DF1E",
	"TypeScript": "#3178C6",
	"Python":     "#3776AB",
	"Java":       "#007396",
	"C++":        "#00599C",
	"C":          "#A8B9CC",
	"C#":         "#239120",
	"PHP":        "#777BB4",
	"Ruby":       "#CC342D",
	"Go":         "#00ADD8",
	"Rust":       "#DEA584",
	"Swift":      "#FA7343",
	"Kotlin":     "#7F52FF",
	"HTML":       "#E34F26",
	"CSS":        "#1572B6",
	"Vue":        "#4FC08D",
	"React":      "#61DAFB",
	"Shell":      "#4EAA25",
}

// LanguageColor returns the swatch color for a language.
func LanguageColor(language string) string {
	if c, ok := languageColors[language]; ok {
		return c
	}
	return DefaultLanguageColor
}
