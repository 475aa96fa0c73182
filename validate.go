package combi

import "github.com/hashicorp/go-multierror"

// Validatable is implemented by *Fragment[T] for every T: it reports
// construction-time defects in its own rule set without needing to
// know the fragment's result type.
type Validatable interface {
	validate() []error
}

func (f *Fragment[T]) validate() []error {
	var errs []error
	for _, r := range f.nonLRRules {
		if r.action == nil {
			errs = append(errs, &NoExecuteDefinitionError{Fragment: f.name})
		}
	}
	for _, r := range f.lrRules {
		if r.action == nil {
			errs = append(errs, &NoExecuteDefinitionError{Fragment: f.name})
		}
	}
	return errs
}

// Validate checks every given fragment for rules left without a bound
// semantic action, aggregating all findings across the whole grammar
// into a single error instead of failing at the first one.
func Validate(fragments ...Validatable) error {
	var result *multierror.Error
	for _, f := range fragments {
		for _, e := range f.validate() {
			result = multierror.Append(result, e)
		}
	}
	return result.ErrorOrNil()
}
