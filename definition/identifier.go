package definition

import (
	"fmt"
	"strconv"
	"strings"
)

type identKind uint8

const (
	kindDir identKind = iota
	kindAdd
	kindMul
	kindDiv
	kindSub
	kindAssign
	kindPic
	kindCustom
)

var kindNames = [...]string{
	kindDir:    "dir",
	kindAdd:    "add",
	kindMul:    "mul",
	kindDiv:    "div",
	kindSub:    "sub",
	kindAssign: "assign",
	kindPic:    "pic",
	kindCustom: "custom",
}

// Identifier names what a definition stands for: one of the built-in
// symbols, or a user-defined function numbered n. Identifiers are comparable.
type Identifier struct {
	kind identKind
	n    int
}

// Built-in identifiers.
var (
	Dir    = Identifier{kind: kindDir}
	Add    = Identifier{kind: kindAdd}
	Mul    = Identifier{kind: kindMul}
	Div    = Identifier{kind: kindDiv}
	Sub    = Identifier{kind: kindSub}
	Assign = Identifier{kind: kindAssign}
	Pic    = Identifier{kind: kindPic}
)

// Custom returns the identifier of user-defined function n.
func Custom(n int) Identifier { return Identifier{kind: kindCustom, n: n} }

// CustomIndex returns n and true if id is Custom(n).
func (id Identifier) CustomIndex() (int, bool) {
	return id.n, id.kind == kindCustom
}

func (id Identifier) String() string {
	if id.kind == kindCustom {
		return fmt.Sprintf("custom(%d)", id.n)
	}
	if int(id.kind) < len(kindNames) {
		return kindNames[id.kind]
	}
	return fmt.Sprintf("identifier(%d)", id.kind)
}

// MarshalText implements encoding.TextMarshaler with the String form.
func (id Identifier) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseIdentifier.
func (id *Identifier) UnmarshalText(b []byte) error {
	v, err := ParseIdentifier(string(b))
	if err != nil {
		return err
	}
	*id = v
	return nil
}

// ParseIdentifier accepts the String forms: "dir", "add", ..., "pic",
// "custom(3)" and the shorthand "custom" for custom(0). Case is ignored.
func ParseIdentifier(s string) (Identifier, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if t == name {
			return Identifier{kind: identKind(k)}, nil
		}
	}
	if strings.HasPrefix(t, "custom(") && strings.HasSuffix(t, ")") {
		n, err := strconv.Atoi(t[len("custom(") : len(t)-1])
		if err == nil && n >= 0 {
			return Custom(n), nil
		}
	}
	return Identifier{}, fmt.Errorf("definition: ParseIdentifier(%q): %w", s, ErrUnknownIdentifier)
}
