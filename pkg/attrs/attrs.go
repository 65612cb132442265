// Package attrs computes the render-time attribute bag of a widget. It mixes
// allow-listed validation concerns from a field into the widget attributes,
// resolving dotted attribute names into nested bags and serializing values
// into the formats the client toolkit expects. It also reports the widget's
// module requirements to the page collector. The whole path is permissive:
// concerns without a value or without a mapping are skipped silently.
package attrs

import (
	"strings"
	"time"

	"github.com/goliatone/go-dojoform/pkg/collector"
	"github.com/goliatone/go-dojoform/pkg/widgets"
)

// Bag holds widget attributes. Dotted attribute paths materialize as nested
// bags, so "constraints.min" lives at bag["constraints"].(Bag)["min"]. Bags
// are built fresh per render call and never cached.
type Bag map[string]any

// Extra is the bundle of validation concerns a bound field forwards into
// rendering, keyed by concern name (widgets.Extra* constants).
type Extra map[string]any

// DefaultFieldAttrMap maps validation concern names to widget attribute
// paths. Widget descriptors override single entries through their AttrMap.
var DefaultFieldAttrMap = map[string]string{
	widgets.ExtraRequired:      "required",
	widgets.ExtraHelpText:      "promptMessage",
	widgets.ExtraMinValue:      "constraints.min",
	widgets.ExtraMaxValue:      "constraints.max",
	widgets.ExtraMaxLength:     "maxlength",
	widgets.ExtraDecimalPlaces: "constraints.places",
	widgets.ExtraJSRegex:       "regExp",
	widgets.ExtraMultiple:      "multiple",
}

// Clone copies the bag, descending into nested bags.
func (b Bag) Clone() Bag {
	if b == nil {
		return nil
	}
	out := make(Bag, len(b))
	for key, value := range b {
		switch nested := value.(type) {
		case Bag:
			out[key] = nested.Clone()
		case map[string]any:
			out[key] = Bag(nested).Clone()
		default:
			out[key] = value
		}
	}
	return out
}

// Build computes the final attribute bag for a widget: the base attributes
// plus the dojoType, the allow-listed extra field attributes merged at their
// mapped paths, and booleans normalized to the lowercase true/false tokens.
// Module requirements are reported to col as a side effect; a nil collector
// disables collection. Identical inputs always produce identical bags.
func Build(desc widgets.Descriptor, base Bag, extra Extra, col *collector.Collector) Bag {
	out := base.Clone()
	if out == nil {
		out = Bag{}
	}

	if desc.DojoType != "" {
		out["dojoType"] = desc.DojoType
	}
	for _, module := range desc.Requires() {
		col.Add(module)
	}
	if desc.RegexFunc != "" {
		if _, exists := out["regExpGen"]; !exists {
			out["regExpGen"] = desc.RegexFunc
		}
	}

	if len(extra) > 0 {
		for _, concern := range desc.ValidExtraAttrs {
			value, ok := extra[concern]
			if !ok || value == nil {
				continue
			}
			path := attrPath(desc, concern)
			if path == "" {
				continue
			}
			mixin(out, path, serializeTemporal(value, desc.ValueFormat))
		}
	}

	normalizeBools(out)
	return out
}

// attrPath resolves the target attribute path for a concern, preferring the
// widget's own map over the process-wide default.
func attrPath(desc widgets.Descriptor, concern string) string {
	if path, ok := desc.AttrMap[concern]; ok {
		return path
	}
	return DefaultFieldAttrMap[concern]
}

// mixin writes value at the dotted path, creating intermediate bags as
// needed. The leaf is first-writer-wins: an existing value stays. A
// non-bag value blocking an intermediate segment aborts the merge.
func mixin(bag Bag, path string, value any) {
	segments := strings.Split(path, ".")
	current := bag
	for i, segment := range segments {
		if i == len(segments)-1 {
			if _, exists := current[segment]; !exists {
				current[segment] = value
			}
			return
		}
		next, exists := current[segment]
		if !exists {
			child := Bag{}
			current[segment] = child
			current = child
			continue
		}
		switch nested := next.(type) {
		case Bag:
			current = nested
		case map[string]any:
			current = Bag(nested)
		default:
			return
		}
	}
}

// serializeTemporal renders time values per the dojo.date.stamp convention.
// The widget's value format decides whether the date part, the time part, or
// both survive.
func serializeTemporal(value any, format widgets.ValueFormat) any {
	ts, ok := value.(time.Time)
	if !ok {
		return value
	}
	switch format {
	case widgets.FormatDate:
		return ts.Format("2006-01-02")
	case widgets.FormatTime:
		return ts.Format("T15:04:05")
	default:
		return ts.Format("2006-01-02T15:04:05")
	}
}

// normalizeBools rewrites boolean values anywhere in the bag into the
// lowercase literal tokens the client toolkit parses.
func normalizeBools(bag Bag) {
	for key, value := range bag {
		switch typed := value.(type) {
		case bool:
			if typed {
				bag[key] = "true"
			} else {
				bag[key] = "false"
			}
		case Bag:
			normalizeBools(typed)
		case map[string]any:
			normalizeBools(Bag(typed))
		}
	}
}
