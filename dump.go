package vessel

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cast"
)

var dumpJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// Dump renders any proxyable value as JSON, consuming only Count, ForEach,
// and the indexer. Associative shapes render as objects with stringified
// keys, every other shape as an array; nested containers render
// recursively. Returns ErrInvalidArgument for unclassifiable input.
func Dump(value any) ([]byte, error) {
	p, err := AsProxy(value)
	if err != nil {
		return nil, err
	}
	return dumpJSON.Marshal(render(p))
}

// render builds the JSON-ready representation of one proxy.
func render(p *Proxy) any {
	if p.desc.Shape.Associative() {
		out := make(map[string]any, p.Count())
		p.ForEach(func(key, value any) bool {
			name, err := cast.ToStringE(key)
			if err != nil {
				name = fmt.Sprintf("%v", key)
			}
			out[name] = renderValue(value)
			return true
		})
		return out
	}

	out := make([]any, 0, p.Count())
	p.ForEach(func(_, value any) bool {
		out = append(out, renderValue(value))
		return true
	})
	return out
}

// renderValue recurses into nested containers, leaving scalars as-is.
// Strings stay scalar; rendering them as rune arrays would surprise
// every caller.
func renderValue(v any) any {
	if _, ok := v.(string); ok {
		return v
	}
	if nested, ok := TryCreate(v); ok {
		return render(nested)
	}
	return v
}
