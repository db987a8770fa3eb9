package domain

// AnalysisResult is the umpire's verdict for one comment.
type AnalysisResult struct {
	Category           []string // Open vocabulary; display order preserved
	IsCounter          bool
	GrahamHierarchy    string // e.g. "Lv5:反論提示", empty when not applicable
	LogicalFallacy     string // Empty when none detected
	ValidityAssessment string // "高い", "中程度", "低い", or whatever the umpire says
	SafeOrOut          string // "safe" or "out"
	Explanation        string
	ValidityReason     string
}

// IsOut reports whether the umpire called the comment out.
func (r AnalysisResult) IsOut() bool {
	return r.SafeOrOut == "out"
}

// Protest message roles.
const (
	RoleUser   = "user"
	RoleUmpire = "umpire"
)

// ProtestMessage is one turn in a protest conversation.
type ProtestMessage struct {
	Role    string
	Content string
}
