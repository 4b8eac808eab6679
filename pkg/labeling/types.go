package labeling

// Label is an operator verdict on one occurrence.
type Label string

const (
	LabelRealNG   Label = "RealNG"
	LabelOverkill Label = "Overkill"
)

// Valid reports whether l is one of the two known labels.
func (l Label) Valid() bool {
	return l == LabelRealNG || l == LabelOverkill
}

// Action records one completed labeling move so it can be undone.
// An Action is single-use: callers keep a stack and pop exactly once
// per undo.
type Action struct {
	Label       Label
	ClassFolder string
	CellKey     string
	Region      string

	SrcPath string // original location under the fetch output tree
	DstPath string // moved-to location under the HumanReview tree
}
