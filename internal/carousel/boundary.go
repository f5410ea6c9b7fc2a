package carousel

// Boundary classifies the viewport position relative to the content.
type Boundary int

const (
	Neither Boundary = iota
	Start
	End
)

func (b Boundary) String() string {
	switch b {
	case Start:
		return "start"
	case End:
		return "end"
	default:
		return "neither"
	}
}
