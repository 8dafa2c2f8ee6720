package format

import "strings"

const (
	// Marker is inserted before every segment and consumes one style descriptor.
	Marker = "%c"

	// StringFlag is the flag appended to the first segment when a call carries
	// more descriptors than permissible flags.
	StringFlag = "%s"

	flagPrefix = '%'
)

// permissibleFlags is the whitelist of two-character tokens a console sink
// treats as styling or substitution flags.
var permissibleFlags = map[string]bool{
	"%c": true, // style
	"%d": true, // integer
	"%f": true, // float
	"%i": true, // integer
	"%o": true, // object
	"%O": true, // object
	"%s": true, // string
}

// IsPermissibleFlag reports whether token is one of %c, %d, %f, %i, %o, %O or %s.
func IsPermissibleFlag(token string) bool {
	return permissibleFlags[token]
}

// PossibleFlags returns every '%' in s paired with the byte that follows it.
// A trailing '%' is returned on its own. Overlapping tokens are kept, so
// "%%d" yields "%%" and "%d".
func PossibleFlags(s string) []string {
	var tokens []string
	for i := 0; i < len(s); i++ {
		if s[i] != flagPrefix {
			continue
		}
		end := i + 2
		if end > len(s) {
			end = len(s)
		}
		tokens = append(tokens, s[i:end])
	}
	return tokens
}

// PermissibleFlags returns the tokens of s that are permissible flags, in order.
func PermissibleFlags(s string) []string {
	var flags []string
	for _, token := range PossibleFlags(s) {
		if IsPermissibleFlag(token) {
			flags = append(flags, token)
		}
	}
	return flags
}

// CountFlags returns the number of permissible flags in s.
func CountFlags(s string) int {
	return len(PermissibleFlags(s))
}

// Escape doubles every '%' in text so a console sink prints it literally
// instead of reading it as a flag.
func Escape(text string) string {
	return strings.ReplaceAll(text, "%", "%%")
}
