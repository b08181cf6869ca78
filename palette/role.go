package palette

import "fmt"

// Kind tags the variant held by a Role.
type Kind uint8

const (
	// KindNone marks an unclassified colour ("don't care").
	KindNone Kind = iota
	// KindInput marks a registered input colour.
	KindInput
	// KindOutput marks a registered output colour.
	KindOutput
	// KindFunction marks the function-marker colour.
	KindFunction
	// KindLoop marks a numeric loop marker (N,0,0).
	KindLoop
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInput:
		return "input"
	case KindOutput:
		return "output"
	case KindFunction:
		return "function"
	case KindLoop:
		return "loop"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Role is the semantic role of a colour. It is comparable, so it can be used
// directly as a map key and compared with ==.
//
// Only the fields relevant to Kind are set: Color for Input/Output, ID for Loop.
type Role struct {
	Kind  Kind
	Color Color
	ID    uint8
}

// None is the unclassified role.
var None = Role{}

// Input returns the role of registered input colour c.
func Input(c Color) Role { return Role{Kind: KindInput, Color: c} }

// Output returns the role of registered output colour c.
func Output(c Color) Role { return Role{Kind: KindOutput, Color: c} }

// Function returns the function-marker role.
func Function() Role { return Role{Kind: KindFunction} }

// Loop returns the loop-marker role with numeric id.
func Loop(id uint8) Role { return Role{Kind: KindLoop, ID: id} }

// Relevant reports whether r is anything but None.
func (r Role) Relevant() bool { return r.Kind != KindNone }

// IsLoop reports whether r is a loop marker.
func (r Role) IsLoop() bool { return r.Kind == KindLoop }

func (r Role) String() string {
	switch r.Kind {
	case KindInput, KindOutput:
		return fmt.Sprintf("%s(%s)", r.Kind, r.Color.Hex())
	case KindLoop:
		return fmt.Sprintf("loop(%d)", r.ID)
	default:
		return r.Kind.String()
	}
}
