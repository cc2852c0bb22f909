package jellyschema

import "net"

func newIPv4DataType() DataType {
	validator := ValidatorFunc(func(value any, ctx *WalkContext) ValidationState {
		s, ok := value.(string)
		if !ok {
			return NewValidationState()
		}
		ip := net.ParseIP(s)
		if ip == nil || ip.To4() == nil {
			return ValidationStateFromError(ctx.ValidationError("type", "expected valid IPv4 address"))
		}
		return NewValidationState()
	})
	return NewDataType("ipv4-address", "type: string\n", validator, nil)
}

func newIPv6DataType() DataType {
	validator := ValidatorFunc(func(value any, ctx *WalkContext) ValidationState {
		s, ok := value.(string)
		if !ok {
			return NewValidationState()
		}
		ip := net.ParseIP(s)
		if ip == nil || ip.To4() != nil {
			return ValidationStateFromError(ctx.ValidationError("type", "expected valid IPv6 address"))
		}
		return NewValidationState()
	})
	return NewDataType("ipv6-address", "type: string\n", validator, nil)
}

func newIPDataType() DataType {
	validator := ValidatorFunc(func(value any, ctx *WalkContext) ValidationState {
		s, ok := value.(string)
		if !ok {
			return NewValidationState()
		}
		if net.ParseIP(s) == nil {
			return ValidationStateFromError(ctx.ValidationError("type", "expected valid IP address"))
		}
		return NewValidationState()
	})
	return NewDataType("ip-address", "type: string\n", validator, nil)
}

func isIPAddress(s string) bool {
	return net.ParseIP(s) != nil
}
