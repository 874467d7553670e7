package site

// Accordion icons.
const (
	IconCollapsed = "+"
	IconExpanded  = "−"
)

// Accordion is the FAQ state: at most one answer is expanded at a time.
// It is a value; methods return the next state.
type Accordion struct {
	Open string `json:"faqOpen"`
}

// Toggle expands id and collapses every other item, or collapses id when it
// is the one already expanded.
func (a Accordion) Toggle(id string) Accordion {
	if a.Open == id {
		return Accordion{}
	}
	return Accordion{Open: id}
}

func (a Accordion) Expanded(id string) bool {
	return id != "" && a.Open == id
}

// Icon returns the marker shown next to a question.
func (a Accordion) Icon(id string) string {
	if a.Expanded(id) {
		return IconExpanded
	}
	return IconCollapsed
}
