package validation

// StubValidator is a Validator test double with injectable behavior.
type StubValidator struct {
	ValidateStructFunc func(s any) map[string]string
}

var _ Validator = (*StubValidator)(nil)

func (v *StubValidator) ValidateStruct(s any) map[string]string {
	return v.ValidateStructFunc(s)
}
