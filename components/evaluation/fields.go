package evaluation

import "context"

// Canonical field names, matching the intake schema properties.
const (
	FieldFullName = "fullName"
	FieldLastName = "lastName"
	FieldCompany  = "company"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldMessage  = "message"
)

// FieldNames returns the six required fields in form order.
func FieldNames() []string {
	return []string{
		FieldFullName,
		FieldLastName,
		FieldCompany,
		FieldEmail,
		FieldPhone,
		FieldMessage,
	}
}

// LabelFor returns the human label for a field name, looked up from the
// intake schema. Unknown field names fall back to the raw name.
func LabelFor(name string) string {
	form, err := Model(context.Background())
	if err != nil {
		return name
	}
	if label, ok := form.Labels()[name]; ok && label != "" {
		return label
	}
	return name
}

// intakePayload is the wire body forwarded to the intake endpoint. The
// internal fullName key maps to the wire field firstName.
type intakePayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Company   string `json:"company"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
}

func payloadFromValues(values map[string]string) intakePayload {
	return intakePayload{
		FirstName: values[FieldFullName],
		LastName:  values[FieldLastName],
		Company:   values[FieldCompany],
		Email:     values[FieldEmail],
		Phone:     values[FieldPhone],
		Message:   values[FieldMessage],
	}
}
