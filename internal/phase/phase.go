package phase

import (
	"fmt"
	"strings"
)

// Phase is one step of a linear lifecycle, as reported by whatever drives the lifecycle.
//
// A single type covers both families; see [Family] for which phases each one recognises.
//
//go:generate go tool stringer -type Phase -linecomment
type Phase int

const (
	None        Phase = iota // NONE
	Attach                   // ATTACH
	Create                   // CREATE
	CreateView               // CREATE_VIEW
	Start                    // START
	Resume                   // RESUME
	Pause                    // PAUSE
	Stop                     // STOP
	DestroyView              // DESTROY_VIEW
	Destroy                  // DESTROY
	Detach                   // DETACH
)

// Count is the number of defined Phase values, None included.
//
// It follows the stringer output, so regenerating after adding a phase is enough to grow every table
// sized by it.
const Count = len(_Phase_index) - 1

// Valid reports whether p is a concrete, known phase.
func (p Phase) Valid() bool {
	return p > None && int(p) < Count
}

func (p Phase) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("cannot marshal %v", p)
	}
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Parse accepts the canonical names (CREATE_VIEW) as well as the looser spellings people tend to type:
// create_view, create-view, CreateView.
func Parse(s string) (Phase, error) {
	want := normalize(s)
	for p := None + 1; int(p) < Count; p++ {
		if normalize(p.String()) == want {
			return p, nil
		}
	}
	return None, fmt.Errorf("unknown lifecycle phase %q", s)
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(s)
}
