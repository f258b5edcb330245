// Package validate checks user input before it is allowed to reach the
// backend. A Validator holds an ordered list of rules per field; every
// request path goes through one of the prebuilt validators so the rules
// live in exactly one place.
package validate

// RuleFunc checks one field value and returns a human-readable problem,
// or nil when the value passes.
type RuleFunc func(value string) error

type rule struct {
	name  string
	check RuleFunc
}

// Validator validates named form fields against ordered rule lists.
type Validator struct {
	fields []string
	rules  map[string][]rule
}

// New returns an empty Validator.
func New() *Validator {
	return &Validator{rules: make(map[string][]rule)}
}

// AddRule appends a rule to field. Rules run in registration order.
func (v *Validator) AddRule(field, name string, check RuleFunc) *Validator {
	if _, ok := v.rules[field]; !ok {
		v.fields = append(v.fields, field)
	}
	v.rules[field] = append(v.rules[field], rule{name: name, check: check})
	return v
}

// Field runs the rules registered for field against value and returns
// the first failure, or nil when every rule passes. Fields with no rules
// always pass.
func (v *Validator) Field(field, value string) error {
	for _, r := range v.rules[field] {
		if err := r.check(value); err != nil {
			return err
		}
	}
	return nil
}

// Form validates every registered field against values and returns the
// failures keyed by field name. All fields are evaluated even when an
// early one fails, so the caller can surface every problem at once.
// An empty map means the form is valid.
func (v *Validator) Form(values map[string]string) map[string]error {
	problems := make(map[string]error)
	for _, field := range v.fields {
		if err := v.Field(field, values[field]); err != nil {
			problems[field] = err
		}
	}
	return problems
}

// Fields returns the registered field names in registration order.
func (v *Validator) Fields() []string {
	out := make([]string, len(v.fields))
	copy(out, v.fields)
	return out
}
