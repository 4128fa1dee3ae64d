package model

// FieldType is the simplified enum for form-friendly field kinds.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeInteger FieldType = "integer"
	FieldTypeNumber  FieldType = "number"
	FieldTypeBoolean FieldType = "boolean"
)

const (
	ValidationRuleMinLength = "minLength"
	ValidationRuleMaxLength = "maxLength"
	ValidationRulePattern   = "pattern"
)

// ValidationRule represents a single validation constraint applied to a
// field. Length limits encode their threshold in Params["value"] while
// pattern rules preserve the original expression in Params["pattern"].
type ValidationRule struct {
	Kind   string            `json:"kind"`
	Params map[string]string `json:"params,omitempty"`
}

// Field models an individual input inside the evaluation form.
type Field struct {
	Name        string           `json:"name"`
	Type        FieldType        `json:"type"`
	Format      string           `json:"format,omitempty"`
	Required    bool             `json:"required"`
	Label       string           `json:"label,omitempty"`
	Placeholder string           `json:"placeholder,omitempty"`
	Description string           `json:"description,omitempty"`
	Widget      string           `json:"widget,omitempty"`
	Validations []ValidationRule `json:"validations,omitempty"`
}

// FormModel is the top-level representation the renderer and the evaluation
// handler consume.
type FormModel struct {
	OperationID string  `json:"operationId"`
	Endpoint    string  `json:"endpoint"`
	Method      string  `json:"method"`
	Summary     string  `json:"summary,omitempty"`
	Description string  `json:"description,omitempty"`
	Fields      []Field `json:"fields"`
}

// FieldNames returns the ordered field names of the model.
func (m FormModel) FieldNames() []string {
	if len(m.Fields) == 0 {
		return nil
	}
	out := make([]string, 0, len(m.Fields))
	for _, field := range m.Fields {
		out = append(out, field.Name)
	}
	return out
}

// FieldByName returns the named field and whether it exists.
func (m FormModel) FieldByName(name string) (Field, bool) {
	for _, field := range m.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// Labels returns a name→label table for the model. Fields without an explicit
// label fall back to DefaultLabeler.
func (m FormModel) Labels() map[string]string {
	if len(m.Fields) == 0 {
		return nil
	}
	out := make(map[string]string, len(m.Fields))
	for _, field := range m.Fields {
		label := field.Label
		if label == "" {
			label = DefaultLabeler(field.Name)
		}
		out[field.Name] = label
	}
	return out
}
