package validator

import "strings"

// FieldRules is the declarative rule set attached to a form field.
// Rules are evaluated in a fixed order: Required, Email, Password, MinLength.
type FieldRules struct {
	Required  bool `json:"required,omitempty" yaml:"required"`
	Email     bool `json:"email,omitempty" yaml:"email"`
	Password  bool `json:"password,omitempty" yaml:"password"`
	MinLength int  `json:"minLength,omitempty" yaml:"min_length"`
}

// Field is a single form input as seen by the engine.
type Field struct {
	ID    string
	Label string
	Value string
}

// Result is the verdict for one field. Message is empty when Valid is true.
type Result struct {
	Valid   bool
	Message string
	Error   *ValidationError
}

// Rules expands a rule set into ordered Rule values for the given field.
// The value is trimmed before any check runs.
func (r FieldRules) Rules(f Field) []Rule {
	value := strings.TrimSpace(f.Value)
	rules := make([]Rule, 0, 4)
	if r.Required {
		rules = append(rules, RequiredString(f.ID, f.Label, value))
	}
	if r.Email {
		rules = append(rules, SimpleEmail(f.ID, value))
	}
	if r.Password {
		rules = append(rules, PasswordPolicy(f.ID, value))
	}
	if r.MinLength > 0 {
		rules = append(rules, MinLenString(f.ID, value, r.MinLength))
	}
	return rules
}

// Validate evaluates rules against the field and reports the first failure.
// It is a pure function of its inputs.
func Validate(f Field, rules FieldRules) Result {
	if err := First(rules.Rules(f)...); err != nil {
		return Result{Message: err.Message, Error: err}
	}
	return Result{Valid: true}
}

// FieldSpec pairs a field's identity with its rule set.
type FieldSpec struct {
	ID    string
	Label string
	Rules FieldRules
}

// ValidateAll validates every spec against values independently and returns
// one Result per field plus an aggregate error when any field failed.
// A spec without a submitted value is validated as empty.
func ValidateAll(specs []FieldSpec, values map[string]string) (map[string]Result, error) {
	results := make(map[string]Result, len(specs))
	var errs ValidationErrors
	for _, spec := range specs {
		res := Validate(Field{ID: spec.ID, Label: spec.Label, Value: values[spec.ID]}, spec.Rules)
		results[spec.ID] = res
		if !res.Valid {
			errs.Add(*res.Error)
		}
	}
	if errs.IsEmpty() {
		return results, nil
	}
	return results, errs
}
