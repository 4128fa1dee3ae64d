// Package schema turns an embedded OpenAPI 3 document into the form model the
// evaluation component renders and validates against. Only the request body
// of a single JSON operation is consulted; everything else in the document is
// ignored.
package schema

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/lexport/go-sitekit/pkg/model"
)

const widgetExtensionKey = "x-widget"

var (
	ErrOperationNotFound = errors.New("schema: operation not found")
	ErrNoRequestBody     = errors.New("schema: operation has no JSON request body")
)

// FormModel extracts the named operation from a raw OpenAPI document and
// builds the corresponding form model. Field order follows the schema's
// required list; optional properties come afterwards in name order.
func FormModel(ctx context.Context, raw []byte, operationID string) (model.FormModel, error) {
	if len(raw) == 0 {
		return model.FormModel{}, errors.New("schema: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return model.FormModel{}, fmt.Errorf("schema: load document: %w", err)
	}
	if doc.Paths == nil || doc.Paths.Len() == 0 {
		return model.FormModel{}, errors.New("schema: document does not contain any paths")
	}

	for path, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for method, operation := range item.Operations() {
			if operation == nil || operation.OperationID != operationID {
				continue
			}
			return buildForm(operation, method, path)
		}
	}

	return model.FormModel{}, fmt.Errorf("%w: %q", ErrOperationNotFound, operationID)
}

func buildForm(operation *openapi3.Operation, method, path string) (model.FormModel, error) {
	body := requestSchema(operation.RequestBody)
	if body == nil {
		return model.FormModel{}, fmt.Errorf("%w: %q", ErrNoRequestBody, operation.OperationID)
	}

	form := model.FormModel{
		OperationID: operation.OperationID,
		Endpoint:    path,
		Method:      strings.ToUpper(method),
		Summary:     operation.Summary,
		Description: operation.Description,
		Fields:      buildFields(body),
	}
	return form, nil
}

func requestSchema(requestBody *openapi3.RequestBodyRef) *openapi3.Schema {
	if requestBody == nil || requestBody.Value == nil {
		return nil
	}
	mt, ok := requestBody.Value.Content["application/json"]
	if !ok || mt.Schema == nil || mt.Schema.Value == nil {
		return nil
	}
	return mt.Schema.Value
}

func buildFields(body *openapi3.Schema) []model.Field {
	if len(body.Properties) == 0 {
		return nil
	}

	required := make(map[string]bool, len(body.Required))
	for _, name := range body.Required {
		required[name] = true
	}

	names := orderedPropertyNames(body)
	fields := make([]model.Field, 0, len(names))
	for _, name := range names {
		ref := body.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		fields = append(fields, buildField(name, ref.Value, required[name]))
	}
	return fields
}

// orderedPropertyNames keeps the required list order, then appends optional
// properties alphabetically. OpenAPI properties are a map, so the required
// list doubles as the declared field order.
func orderedPropertyNames(body *openapi3.Schema) []string {
	seen := make(map[string]bool, len(body.Properties))
	names := make([]string, 0, len(body.Properties))

	for _, name := range body.Required {
		if _, ok := body.Properties[name]; !ok || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}

	var rest []string
	for name := range body.Properties {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}

func buildField(name string, src *openapi3.Schema, required bool) model.Field {
	field := model.Field{
		Name:        name,
		Type:        fieldType(src),
		Format:      src.Format,
		Required:    required,
		Label:       strings.TrimSpace(src.Title),
		Description: strings.TrimSpace(src.Description),
		Widget:      widgetHint(src),
		Validations: validationRules(src),
	}
	if field.Label == "" {
		field.Label = model.DefaultLabeler(name)
	}
	return field
}

func fieldType(src *openapi3.Schema) model.FieldType {
	switch firstSchemaType(src.Type) {
	case "integer":
		return model.FieldTypeInteger
	case "number":
		return model.FieldTypeNumber
	case "boolean":
		return model.FieldTypeBoolean
	default:
		return model.FieldTypeString
	}
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil || len(*types) == 0 {
		return ""
	}
	return (*types)[0]
}

func widgetHint(src *openapi3.Schema) string {
	raw, ok := src.Extensions[widgetExtensionKey]
	if !ok {
		return ""
	}
	if widget, ok := raw.(string); ok {
		return strings.TrimSpace(widget)
	}
	return ""
}

func validationRules(src *openapi3.Schema) []model.ValidationRule {
	var rules []model.ValidationRule
	if src.MinLength > 0 {
		rules = append(rules, model.ValidationRule{
			Kind:   model.ValidationRuleMinLength,
			Params: map[string]string{"value": strconv.FormatUint(src.MinLength, 10)},
		})
	}
	if src.MaxLength != nil {
		rules = append(rules, model.ValidationRule{
			Kind:   model.ValidationRuleMaxLength,
			Params: map[string]string{"value": strconv.FormatUint(*src.MaxLength, 10)},
		})
	}
	if src.Pattern != "" {
		rules = append(rules, model.ValidationRule{
			Kind:   model.ValidationRulePattern,
			Params: map[string]string{"pattern": src.Pattern},
		})
	}
	return rules
}
