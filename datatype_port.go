package jellyschema

// newPortDataType registers `port`: a TCP/UDP port number, 0-65535
// inclusive. No custom validator is needed — the compiled fragment's own
// `min`/`max` keywords enforce the bound exactly the way any other
// `type: integer` schema would.
func newPortDataType() DataType {
	return NewDataType("port", "type: integer\nmin: 0\nmax: 65535\n", nil, nil)
}
