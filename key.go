package vessel

import (
	"fmt"
	"reflect"

	"github.com/spf13/cast"
)

// Key is the indexer argument: either an integer position or a name.
// Associative shapes resolve names against stored keys; positional shapes
// parse a name as an integer position.
type Key struct {
	pos    int
	name   string
	isName bool
}

// Position creates a positional key.
func Position(i int) Key {
	return Key{pos: i}
}

// Name creates a named key.
func Name(s string) Key {
	return Key{name: s, isName: true}
}

// IsName reports whether the key carries a name rather than a position.
func (k Key) IsName() bool {
	return k.isName
}

func (k Key) String() string {
	if k.isName {
		return fmt.Sprintf("%q", k.name)
	}
	return fmt.Sprintf("%d", k.pos)
}

// position resolves the key to an integer position. Named keys are parsed
// as integers; a name that is not numeric text fails.
func (k Key) position() (int, error) {
	if !k.isName {
		return k.pos, nil
	}
	pos, err := cast.ToIntE(k.name)
	if err != nil {
		return 0, newCoerceError(k.name, reflect.TypeFor[int](), err)
	}
	return pos, nil
}

// raw returns the key as the value to resolve against an associative
// container: the name when named, the position otherwise.
func (k Key) raw() any {
	if k.isName {
		return k.name
	}
	return k.pos
}
