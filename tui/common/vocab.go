package common

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// The judging backend emits open-ended Japanese vocabularies for categories,
// Graham hierarchy levels and logical fallacies. New values appear over
// time, so everything here is a lookup with a fallback, never a closed
// enumeration.

// categoryColors maps known comment categories to their badge colors.
var categoryColors = map[string]string{
	"皮肉":     "#FF5722",
	"嘲笑":     "#E91E63",
	"感想":     "#4CAF50",
	"意見":     "#2196F3",
	"アドバイス":  "#00BCD4",
	"批判":     "#FF9800",
	"誹謗中傷":   "#F44336",
	"悪口":     "#9C27B0",
	"侮辱":     "#D32F2F",
	"上から目線":  "#795548",
	"論点すり替え": "#607D8B",
	"攻撃的":    "#B71C1C",
	"賞賛":     "#8BC34A",
	"感謝":     "#FFC107",
	"情報提供":   "#3F51B5",
	"問題提起":   "#FF5722",
	"正論":     "#009688",
	"差別的":    "#212121",
	"共感":     "#FFB6C1",
	"質問":     "#9E9E9E",
	"回答":     "#03A9F4",
	"要望":     "#673AB7",
	"指図":     "#E64A19",
}

// lightCategories render with dark text on their light badge colors.
var lightCategories = map[string]bool{
	"感謝": true,
	"共感": true,
}

const fallbackCategoryColor = "#666666"

// CategoryStyle returns the badge style for a category, falling back to a
// neutral grey for values the backend invents later.
func CategoryStyle(category string) lipgloss.Style {
	color, ok := categoryColors[category]
	if !ok {
		color = fallbackCategoryColor
	}
	fg := "#FFFFFF"
	if lightCategories[category] {
		fg = "#000000"
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(color)).
		Padding(0, 1)
}

var grahamLevelRe = regexp.MustCompile(`Lv(\d+)`)

// GrahamLevel extracts the numeric level from a hierarchy value like
// "Lv5:反論提示". Unknown shapes yield 0.
func GrahamLevel(level string) int {
	m := grahamLevelRe.FindStringSubmatch(level)
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}

// GrahamColor returns the tier color for a hierarchy value: red for the
// name-calling tiers, orange for the middle, green for actual refutation.
func GrahamColor(level string) lipgloss.Color {
	switch n := GrahamLevel(level); {
	case n >= 1 && n <= 2:
		return lipgloss.Color("#F44336")
	case n >= 3 && n <= 4:
		return lipgloss.Color("#FF9800")
	case n >= 5:
		return lipgloss.Color("#4CAF50")
	default:
		return lipgloss.Color(fallbackCategoryColor)
	}
}

// grahamDescriptions maps hierarchy name fragments to a one-word gloss.
var grahamDescriptions = []struct {
	fragment    string
	description string
}{
	{"主眼論破", "最高レベル"},
	{"論破", "高い"},
	{"反論提示", "普通"},
	{"単純否定", "やや低い"},
	{"論調批判", "低い"},
	{"人格攻撃", "非常に低い"},
	{"罵倒", "最低レベル"},
}

// GrahamDescription glosses a hierarchy value, empty for unknown ones.
func GrahamDescription(level string) string {
	for _, d := range grahamDescriptions {
		if strings.Contains(level, d.fragment) {
			return d.description
		}
	}
	return ""
}

// fallacyDescriptions glosses the known logical fallacies.
var fallacyDescriptions = map[string]string{
	"対人論証":     "相手の人格を攻撃",
	"権威論証":     "権威に頼った主張",
	"ストローマン論法": "相手の主張を歪曲",
	"お前だって論法":  "相手も同じと指摘",
	"滑り坂論法":    "極端な結果を想定",
}

// FallacyDescription glosses a fallacy value, empty for unknown ones.
func FallacyDescription(fallacy string) string {
	return fallacyDescriptions[fallacy]
}

// ValidityColor colors a validity assessment; anything the backend invents
// beyond the three known grades renders neutral.
func ValidityColor(assessment string) lipgloss.Color {
	switch assessment {
	case "高い":
		return lipgloss.Color("#4CAF50")
	case "中程度":
		return lipgloss.Color("#FF9800")
	case "低い":
		return lipgloss.Color("#F44336")
	default:
		return lipgloss.Color(fallbackCategoryColor)
	}
}
