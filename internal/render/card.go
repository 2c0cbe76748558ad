package render

import (
	"fmt"
	"strconv"

	"github.com/naka-gawa/github-profile-card/internal/domain"
	"github.com/naka-gawa/github-profile-card/internal/svg"
)

const fontFamily = "Arial, sans-serif"

// Card is everything needed to draw a profile card.
type Card struct {
	Profile *domain.AccountProfile
	Stats   *domain.RepoStats
	// Avatar is a data URI; FallbackAvatar when empty.
	Avatar string
}

type statCard struct {
	icon  string
	label string
	value int
}

func (c Card) statCards() []statCard {
	return []statCard{
		{icon: "📦", label: "Repos", value: c.Profile.PublicRepos},
		{icon: "⭐", label: "Stars", value: c.Stats.TotalStars},
		{icon: "🔀", label: "Forks", value: c.Stats.TotalForks},
		{icon: "👥", label: "Followers", value: c.Profile.Followers},
		{icon: "👤", label: "Following", value: c.Profile.Following},
	}
}

// infoLines returns the optional company and location lines followed by the member-since line.
func (c Card) infoLines() []string {
	var lines []string
	if c.Profile.Company != "" {
		lines = append(lines, "🏢 "+c.Profile.Company)
	}
	if c.Profile.Location != "" {
		lines = append(lines, "📍 "+c.Profile.Location)
	}
	return append(lines, "📅 Member since "+c.Profile.CreatedAt.Format("Jan 2006"))
}

// Layout computes the card's geometry.
func (c Card) Layout() Layout {
	return ComputeLayout(len(c.infoLines()), len(c.statCards()))
}

// Build returns the card as an SVG tree.
func (c Card) Build() *svg.Node {
	avatar := c.Avatar
	if avatar == "" {
		avatar = FallbackAvatar
	}
	info := c.infoLines()
	cards := c.statCards()
	l := ComputeLayout(len(info), len(cards))

	root := svg.New("svg",
		svg.A("width", CanvasWidth), svg.A("height", l.Height), svg.A("xmlns", svg.Namespace))
	root.Add(svg.New("rect",
		svg.A("width", CanvasWidth), svg.A("height", l.Height), svg.A("fill", "#292929"), svg.A("rx", 12)))

	root.Add(translate(30, 30).Add(
		svg.New("defs").Add(
			svg.New("clipPath", svg.A("id", "avatarClip")).Add(
				svg.New("circle", svg.A("cx", 35), svg.A("cy", 35), svg.A("r", 35)),
			),
		),
		svg.New("circle", svg.A("cx", 35), svg.A("cy", 35), svg.A("r", 38), svg.A("fill", "rgba(255,255,255,0.1)")),
		svg.New("image", svg.A("href", avatar), svg.A("x", 0), svg.A("y", 0),
			svg.A("width", 70), svg.A("height", 70), svg.A("clip-path", "url(#avatarClip)")),
	))

	root.Add(translate(120, 45).Add(
		text(0, 0, 22, "#F9FAFB", c.Profile.DisplayName(), svg.A("font-weight", 700)),
		text(0, 25, 14, "#6B7280", "@"+c.Profile.Login),
	))
	root.Add(translate(120, 85).Add(
		svg.New("line", svg.A("x1", 0), svg.A("y1", 0), svg.A("x2", 200), svg.A("y2", 0),
			svg.A("stroke", "rgba(255,255,255,0.1)"), svg.A("stroke-width", 1), svg.A("stroke-dasharray", "4,4")),
	))

	for i, line := range info {
		root.Add(translate(InfoX, l.InfoLineY(i)).Add(text(0, 0, 12, "#9CA3AF", line)))
	}

	for i, lang := range c.Stats.TopLanguages {
		root.Add(translate(l.LanguageX(i), l.LangY).Add(
			svg.New("circle", svg.A("cx", 10), svg.A("cy", 10), svg.A("r", 6), svg.A("fill", LanguageColor(lang.Name))),
			text(25, 13, 12, "#E5E7EB", lang.Name, svg.A("font-weight", 600)),
			text(25, 28, 11, "#9CA3AF", strconv.Itoa(lang.Percent)+"%"),
		))
	}

	for i, card := range cards {
		x, y := l.CardOrigin(i)
		root.Add(translate(x, y).Add(
			svg.New("rect", svg.A("width", CardWidth), svg.A("height", CardHeight), svg.A("rx", 8),
				svg.A("fill", "rgba(255,255,255,0.05)"), svg.A("stroke", "rgba(255,255,255,0.1)"), svg.A("stroke-width", 1)),
			text(CardWidth/2, 25, 18, "#F3F4F6", FormatNumber(card.value),
				svg.A("text-anchor", "middle"), svg.A("font-weight", 700)),
			text(CardWidth/2, 45, 12, "#9CA3AF", card.icon+" "+card.label, svg.A("text-anchor", "middle")),
		))
	}
	return root
}

// Document renders the card.
func (c Card) Document() ([]byte, error) {
	return svg.Render(c.Build())
}

// BuildError returns the fixed-size error document tree.
func BuildError(message string) *svg.Node {
	return svg.New("svg", svg.A("width", ErrorWidth), svg.A("height", ErrorHeight), svg.A("xmlns", svg.Namespace)).Add(
		svg.New("rect", svg.A("width", ErrorWidth), svg.A("height", ErrorHeight), svg.A("fill", "#EF4444"), svg.A("rx", 10)),
		svg.New("text", svg.A("x", ErrorWidth/2), svg.A("y", ErrorHeight/2), svg.A("font-family", "Arial"),
			svg.A("font-size", 18), svg.A("fill", "white"), svg.A("text-anchor", "middle")).WithText("⚠️ "+message),
	)
}

// ErrorDocument renders the error document for message.
func ErrorDocument(message string) []byte {
	out, err := svg.Render(BuildError(message))
	if err != nil {
		// Unreachable with the fixed tree above.
		return []byte(svg.Declaration + fmt.Sprintf(`<svg width="%d" height="%d" xmlns="%s"></svg>`, ErrorWidth, ErrorHeight, svg.Namespace))
	}
	return out
}

func translate(x, y int) *svg.Node {
	return svg.New("g", svg.A("transform", fmt.Sprintf("translate(%d, %d)", x, y)))
}

func text(x, y, size int, fill, content string, extra ...svg.Attr) *svg.Node {
	attrs := []svg.Attr{
		svg.A("x", x), svg.A("y", y), svg.A("font-family", fontFamily), svg.A("font-size", size), svg.A("fill", fill),
	}
	return svg.New("text", append(attrs, extra...)...).WithText(content)
}
