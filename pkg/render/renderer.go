package render

import (
	"context"

	"github.com/goliatone/go-dojoform/pkg/forms"
)

// Renderer converts a constructed form into a byte representation (dijit
// HTML, interactive preview output, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form *forms.Form, options Options) ([]byte, error)
}
