package evaluation

import (
	"context"
	"embed"
	"io/fs"
	"sync"

	"github.com/lexport/go-sitekit/internal/schema"
	"github.com/lexport/go-sitekit/pkg/model"
)

//go:embed schema/intake.yaml
var intakeDocument []byte

//go:embed templates/*.tmpl
var templateFiles embed.FS

// TemplatesFS exposes the built-in form templates so hosts can reuse or
// extend them.
func TemplatesFS() fs.FS {
	return templateFiles
}

// IntakeDocument returns the raw embedded OpenAPI intake document.
func IntakeDocument() []byte {
	return append([]byte(nil), intakeDocument...)
}

const intakeOperationID = "submitEvaluation"

var (
	modelOnce   sync.Once
	cachedModel model.FormModel
	modelErr    error
)

// Model returns the form model derived from the embedded intake document.
func Model(ctx context.Context) (model.FormModel, error) {
	modelOnce.Do(func() {
		cachedModel, modelErr = schema.FormModel(ctx, intakeDocument, intakeOperationID)
	})
	return cachedModel, modelErr
}
