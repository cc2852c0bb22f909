package jellyschema

// defaultDataTypes builds the registry of builtin custom data types,
// grounded on the list in
// _examples/original_source/src/data_types/mod.rs, plus the
// serializer-only types SPEC_FULL.md §8 supplements (password, text, uri,
// stringlist) so every row of spec.md §4.5's primitive mapping table has a
// concrete compiled representation.
func defaultDataTypes() DataTypeMap {
	return NewDataTypeMap(
		newBinaryDataType(),
		newChronyAddressDataType(),
		newDateDataType(),
		newDateTimeDataType(),
		newDnsmasqAddressDataType(),
		newEmailDataType(),
		newFileDataType(),
		newHostnameDataType(),
		newIPDataType(),
		newIPv4DataType(),
		newIPv6DataType(),
		newPasswordDataType(),
		newPortDataType(),
		newTimeDataType(),
		newUUIDv4DataType(),
		newTextDataType(),
		newURIDataType(),
		newStringlistDataType(),
	)
}
