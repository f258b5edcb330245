package settings

// Tab identifies one dashboard section.
type Tab string

// Dashboard tabs in display order.
const (
	TabSummarize    Tab = "summarize"
	TabDocuments    Tab = "documents"
	TabAsk          Tab = "ask"
	TabLearningPath Tab = "learning-path"
)

// Tabs lists every tab in display order.
var Tabs = []Tab{TabSummarize, TabDocuments, TabAsk, TabLearningPath}

// IsValidTab reports whether name matches a known tab.
func IsValidTab(name string) bool {
	for _, tab := range Tabs {
		if string(tab) == name {
			return true
		}
	}
	return false
}

// NormalizeTab maps name to a known tab, falling back to the first tab
// when name is unknown or empty.
func NormalizeTab(name string) Tab {
	if IsValidTab(name) {
		return Tab(name)
	}
	return TabSummarize
}

// Title returns the display name of the tab.
func (t Tab) Title() string {
	switch t {
	case TabSummarize:
		return "Summarize"
	case TabDocuments:
		return "Documents"
	case TabAsk:
		return "Ask"
	case TabLearningPath:
		return "Learning Path"
	default:
		return string(t)
	}
}
