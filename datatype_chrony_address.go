package jellyschema

// newChronyAddressDataType registers `chrony-address`, grounded on
// _examples/original_source/src/data_types/chrony_address/mod.rs: valid as
// a hostname first, falling back to a plain IP address.
func newChronyAddressDataType() DataType {
	validator := ValidatorFunc(func(value any, ctx *WalkContext) ValidationState {
		s, ok := value.(string)
		if !ok {
			return NewValidationState()
		}
		if isHostname(s) || isIPAddress(s) {
			return NewValidationState()
		}
		return ValidationStateFromError(ctx.ValidationError("type", "invalid chrony-address"))
	})
	return NewDataType("chrony-address", "type: string\n", validator, nil)
}

// newDnsmasqAddressDataType registers `dnsmasq-address`, supplemented per
// SPEC_FULL.md §8 and mirrored from chrony-address: a hostname or IP
// address, as dnsmasq's own address directives accept either.
func newDnsmasqAddressDataType() DataType {
	validator := ValidatorFunc(func(value any, ctx *WalkContext) ValidationState {
		s, ok := value.(string)
		if !ok {
			return NewValidationState()
		}
		if isHostname(s) || isIPAddress(s) {
			return NewValidationState()
		}
		return ValidationStateFromError(ctx.ValidationError("type", "invalid dnsmasq-address"))
	})
	return NewDataType("dnsmasq-address", "type: string\n", validator, nil)
}
