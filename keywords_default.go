package jellyschema

// defaultKeywords returns the fixed registration order every JellySchema
// scope compiles with: Common, then Number, String, Array, Object,
// Annotations, and finally Meta. The order matches
// _examples/original_source/src/keywords/mod.rs exactly; it is significant
// because compile errors are reported in registration order when more than
// one keyword on the same node is invalid (the first offending keyword
// wins, not the lexicographically or YAML-source-order first).
func defaultKeywords() []Keyword {
	keywords := []Keyword{
		// Common
		newConstKeyword(),
		newTypeKeyword(),
		newEnumKeyword(),
		newGenerateKeyword(),

		// Number
		newMinKeyword(),
		newMaxKeyword(),
		newExclusiveMaxKeyword(),
		newExclusiveMinKeyword(),
		newMultipleOfKeyword(),

		// String
		newMaxLengthKeyword(),
		newMinLengthKeyword(),
		newPatternKeyword(),

		// Array
		newMaxItemsKeyword(),
		newMinItemsKeyword(),
		newItemsKeyword(),
		newUniqueItemsKeyword(),

		// Object
		newPropertiesKeyword(),
	}

	// Annotations
	keywords = append(keywords, defaultAnnotationKeywords()...)

	// Meta
	keywords = append(keywords, newVersionKeyword())

	return keywords
}
