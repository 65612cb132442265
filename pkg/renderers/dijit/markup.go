package dijit

import (
	"encoding/json"
	"fmt"
	"html"
	"sort"
	"strings"
	"time"

	"github.com/goliatone/go-dojoform/pkg/attrs"
	"github.com/goliatone/go-dojoform/pkg/forms"
	"github.com/goliatone/go-dojoform/pkg/model"
	"github.com/goliatone/go-dojoform/pkg/widgets"
)

// flattenAttrs renders an attribute bag as markup attributes, keys sorted
// for deterministic output. Nested bags serialize to JSON object literals,
// which is how the toolkit's parser expects constraints to arrive.
func flattenAttrs(bag attrs.Bag) string {
	if len(bag) == 0 {
		return ""
	}
	keys := make([]string, 0, len(bag))
	for key := range bag {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		b.WriteByte(' ')
		b.WriteString(key)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(attrValue(bag[key])))
		b.WriteByte('"')
	}
	return b.String()
}

func attrValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case attrs.Bag:
		payload, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(payload)
	case map[string]any:
		return attrValue(attrs.Bag(v))
	default:
		return fmt.Sprintf("%v", v)
	}
}

// fieldValue formats a prefilled value for the control, honoring the
// widget's temporal format the same way the attribute mixer does.
func fieldValue(value any, format widgets.ValueFormat) string {
	if value == nil {
		return ""
	}
	if ts, ok := value.(time.Time); ok {
		switch format {
		case widgets.FormatDate:
			return ts.Format("2006-01-02")
		case widgets.FormatTime:
			return ts.Format("T15:04:05")
		default:
			return ts.Format("2006-01-02T15:04:05")
		}
	}
	return fmt.Sprintf("%v", value)
}

// controlMarkup renders the widget element for a bound field with the final
// attribute bag already computed.
func controlMarkup(bound forms.BoundField, bag attrs.Bag, value string) string {
	switch bound.Widget.Element {
	case widgets.ElementTextarea:
		return fmt.Sprintf("<textarea%s>%s</textarea>", flattenAttrs(bag), html.EscapeString(value))
	case widgets.ElementSelect:
		return selectMarkup(bound, bag, value)
	case widgets.ElementDiv:
		// rich text widgets instantiate on a div wrapping their content
		return fmt.Sprintf("<div%s>%s</div>", flattenAttrs(bag), html.EscapeString(value))
	default:
		withValue := bag
		if value != "" {
			withValue = bag.Clone()
			if _, exists := withValue["value"]; !exists {
				withValue["value"] = value
			}
		}
		return fmt.Sprintf("<input%s />", flattenAttrs(withValue))
	}
}

func selectMarkup(bound forms.BoundField, bag attrs.Bag, value string) string {
	var b strings.Builder
	withMultiple := bag
	if bound.Widget.Multiple {
		withMultiple = bag.Clone()
		if _, exists := withMultiple["multiple"]; !exists {
			withMultiple["multiple"] = "multiple"
		}
	}
	b.WriteString("<select")
	b.WriteString(flattenAttrs(withMultiple))
	b.WriteString(">\n")
	for _, choice := range bound.Field.Choices {
		b.WriteString(`    <option value="`)
		b.WriteString(html.EscapeString(choice.Value))
		b.WriteByte('"')
		if value != "" && choice.Value == value {
			b.WriteString(` selected="selected"`)
		}
		b.WriteByte('>')
		b.WriteString(html.EscapeString(choiceLabel(choice)))
		b.WriteString("</option>\n")
	}
	b.WriteString("</select>")
	return b.String()
}

func choiceLabel(choice model.Choice) string {
	if choice.Label != "" {
		return choice.Label
	}
	return choice.Value
}

// fieldMarkup wraps the control in label/help chrome.
func fieldMarkup(bound forms.BoundField, control string) string {
	if bound.Hidden() {
		return control + "\n"
	}

	var b strings.Builder
	b.Grow(len(control) + 128)
	b.WriteString("<div class=\"dojoform-field\">\n")
	if label := strings.TrimSpace(bound.Label()); label != "" {
		b.WriteString(`    <label for="`)
		b.WriteString(html.EscapeString(fieldID(bound)))
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(label))
		if bound.Field.Required() {
			b.WriteString(" *")
		}
		b.WriteString("</label>\n")
	}
	for _, line := range strings.Split(control, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		b.WriteString("    ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString("</div>\n")
	return b.String()
}

func fieldID(bound forms.BoundField) string {
	return "id_" + bound.Field.Name
}
