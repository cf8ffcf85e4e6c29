package contact

import "strings"

// invisibleReplacer strips characters that survive copy-pasting an address from rich text:
// no-break space, zero-width space, zero-width non-joiner, zero-width joiner and the BOM.
var invisibleReplacer = strings.NewReplacer(
	"\u00a0", "",
	"\u200b", "",
	"\u200c", "",
	"\u200d", "",
	"\ufeff", "",
)

// NormalizeName trims the name and collapses internal whitespace runs to a single space.
func NormalizeName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeEmail trims the address, removes invisible characters and lowercases it.
func NormalizeEmail(s string) string {
	return strings.ToLower(invisibleReplacer.Replace(strings.TrimSpace(s)))
}

// NormalizeMessage trims the message.
func NormalizeMessage(s string) string {
	return strings.TrimSpace(s)
}

// Normalize applies the per-field normalizers.
func Normalize(s Submission) Submission {
	return Submission{
		Name:    NormalizeName(s.Name),
		Email:   NormalizeEmail(s.Email),
		Message: NormalizeMessage(s.Message),
	}
}
