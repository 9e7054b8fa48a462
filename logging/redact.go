package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// PersonalFields is the canonical set of field names (lowercase) that carry
// personal data and must be redacted before logging. Status notes are free
// text supplied by operators and end users; treat them as personal data by
// default.
var PersonalFields = map[string]bool{
	"notes":         true,
	"email":         true,
	"phone":         true,
	"date_of_birth": true,
}

// emailPattern matches raw email addresses that appear inside arbitrary
// string values.
var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

// phonePattern matches international-format phone numbers (+ prefix, 8-15
// digits with optional separators). The digit minimum avoids false positives
// on short numeric values like ports or counts.
var phonePattern = regexp.MustCompile(`\+[0-9][0-9 ().\-]{7,18}[0-9]`)

// fixedRedactOptions is the number of masq options beyond the dynamic
// PersonalFields set (2 field names + 1 prefix + 2 regexes).
const fixedRedactOptions = 5

// newRedactAttr returns a masq-powered ReplaceAttr function for use in
// slog.HandlerOptions. It redacts by field name for known personal fields
// and by regex for values that escape call-site redaction.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, fixedRedactOptions+len(PersonalFields))

	for name := range PersonalFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	// Credentials never belong in a domain log either.
	opts = append(opts,
		masq.WithFieldName("password"),
		masq.WithFieldName("token"),
		masq.WithFieldPrefix("secret_"),

		// Regex-based defense-in-depth for raw personal values.
		masq.WithRegex(emailPattern),
		masq.WithRegex(phonePattern),
	)

	return masq.New(opts...)
}
