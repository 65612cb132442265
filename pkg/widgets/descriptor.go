package widgets

import "slices"

// ValueFormat tells the attribute mixer how to serialize temporal values
// destined for this widget. The tokens follow the dojo.date.stamp convention:
// plain dates render as YYYY-MM-DD, times as THH:MM:SS, combined values as an
// ISO-like string with a T separator.
type ValueFormat string

const (
	FormatNone     ValueFormat = ""
	FormatDate     ValueFormat = "date"
	FormatTime     ValueFormat = "time"
	FormatDateTime ValueFormat = "datetime"
)

// Element is the HTML element a widget renders into.
type Element string

const (
	ElementInput    Element = "input"
	ElementTextarea Element = "textarea"
	ElementSelect   Element = "select"
	ElementDiv      Element = "div"
)

// Descriptor is the flat description of a client-side widget: which dojo
// module it instantiates, which validation concerns it accepts at render
// time, and how those concerns map onto its attributes. Widgets compose
// descriptors instead of subclassing each other, so specializing a widget
// means copying a descriptor and adjusting fields.
type Descriptor struct {
	// Name identifies the descriptor inside a Registry.
	Name string
	// DojoType becomes the dojoType markup attribute and, absent AltRequire,
	// the module reported to the collector.
	DojoType string
	// AltRequire replaces DojoType as the collected module when the loadable
	// module name differs from the instantiated type.
	AltRequire string
	// ExtraRequires lists additional modules the widget needs loaded.
	ExtraRequires []string
	// ValidExtraAttrs allow-lists the validation concerns mixed into this
	// widget's attributes. Concerns absent from the list are dropped.
	ValidExtraAttrs []string
	// AttrMap overrides entries of the process-wide default field-attr map
	// for this widget only.
	AttrMap map[string]string
	// Stylesheets lists toolkit-relative CSS files the widget depends on.
	Stylesheets []string
	// Element and InputType drive markup generation in the dijit renderer.
	Element   Element
	InputType string
	// Multiple marks select-style widgets accepting several values.
	Multiple bool
	// ValueFormat selects temporal serialization for mixed-in values.
	ValueFormat ValueFormat
	// RegexFunc names a client-side regExpGen function attached at render
	// time (validation text boxes use the dojox.validate generators).
	RegexFunc string
}

// AcceptsExtraAttr reports whether the concern is allow-listed for this
// widget.
func (d Descriptor) AcceptsExtraAttr(name string) bool {
	return slices.Contains(d.ValidExtraAttrs, name)
}

// Requires returns the modules this widget asks the collector for, in report
// order: the alternative require (or the dojo type) first, extras after.
func (d Descriptor) Requires() []string {
	var out []string
	switch {
	case d.AltRequire != "":
		out = append(out, d.AltRequire)
	case d.DojoType != "":
		out = append(out, d.DojoType)
	}
	out = append(out, d.ExtraRequires...)
	return out
}

func (d Descriptor) clone() Descriptor {
	out := d
	out.ExtraRequires = slices.Clone(d.ExtraRequires)
	out.ValidExtraAttrs = slices.Clone(d.ValidExtraAttrs)
	out.Stylesheets = slices.Clone(d.Stylesheets)
	if len(d.AttrMap) > 0 {
		out.AttrMap = make(map[string]string, len(d.AttrMap))
		for key, value := range d.AttrMap {
			out.AttrMap[key] = value
		}
	} else {
		out.AttrMap = nil
	}
	return out
}
