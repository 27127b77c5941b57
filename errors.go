package rexgen

import errorutil "github.com/projectdiscovery/utils/errors"

// Validate checks Options for combinations that cannot be satisfied, the
// same tagged-error pattern the teacher uses at its own API boundary
// (mutator.go's Options validation).
func (o *Options) Validate() error {
	if o.ConvertAstralToSurrogate && !o.EscapeNonASCII {
		return errorutil.NewWithTag("rexgen", "ConvertAstralToSurrogate requires EscapeNonASCII to be enabled")
	}
	return nil
}
