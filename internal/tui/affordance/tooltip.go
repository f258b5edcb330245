package affordance

// TooltipProvider maps form fields to the hint shown while the field is
// focused. Fields without a registered hint show nothing.
type TooltipProvider struct {
	hints   map[string]string
	focused string
}

// NewTooltipProvider creates a provider with the given field hints.
func NewTooltipProvider(hints map[string]string) *TooltipProvider {
	if hints == nil {
		hints = make(map[string]string)
	}
	return &TooltipProvider{hints: hints}
}

// SetHint registers or replaces the hint for field.
func (t *TooltipProvider) SetHint(field, hint string) {
	t.hints[field] = hint
}

// Focus marks field as the focused input. An empty field clears focus.
func (t *TooltipProvider) Focus(field string) {
	t.focused = field
}

// Current returns the hint for the focused field, or false when no
// field is focused or the field has no hint.
func (t *TooltipProvider) Current() (string, bool) {
	if t.focused == "" {
		return "", false
	}
	hint, ok := t.hints[t.focused]
	if !ok || hint == "" {
		return "", false
	}
	return hint, true
}
