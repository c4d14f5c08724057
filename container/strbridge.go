package container

// SetString is the single-string result setter passed to callbacks whose
// result length is unbounded. The callback invokes it at most once,
// synchronously, before returning; the receiving side copies the string
// during the invocation. An unset result is treated as an empty string.
type SetString func(s string)

// SetLanguage is the (language, culture) pair setter used by the
// get-language capability, under the same at-most-once contract.
type SetLanguage func(language, culture string)

// captureString returns a SetString and a pointer to the captured result,
// pre-seeded with a fallback used when the callback never invokes the
// setter.
func captureString(fallback string) (SetString, *string) {
	result := fallback
	return func(s string) {
		result = s
	}, &result
}

// captureLanguage returns a SetLanguage and pointers to the captured pair.
func captureLanguage() (SetLanguage, *string, *string) {
	var language, culture string
	return func(lang, cult string) {
		language = lang
		culture = cult
	}, &language, &culture
}
