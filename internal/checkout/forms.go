package checkout

import "strings"

// Pure input formatters for the checkout form fields. Each takes whatever
// the user typed and returns the canonical display form.

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatCardNumber groups up to 16 digits as "1234 5678 9012 3456".
func FormatCardNumber(s string) string {
	d := digits(s)
	if len(d) > 16 {
		d = d[:16]
	}
	var groups []string
	for i := 0; i < len(d); i += 4 {
		end := i + 4
		if end > len(d) {
			end = len(d)
		}
		groups = append(groups, d[i:end])
	}
	return strings.Join(groups, " ")
}

// FormatExpiry renders up to four digits as "MM/YY".
func FormatExpiry(s string) string {
	d := digits(s)
	if len(d) > 4 {
		d = d[:4]
	}
	if len(d) <= 2 {
		return d
	}
	return d[:2] + "/" + d[2:]
}

// FormatCVV keeps at most three digits.
func FormatCVV(s string) string {
	d := digits(s)
	if len(d) > 3 {
		d = d[:3]
	}
	return d
}

// FormatPhone applies the Turkish "5xx xxx xx xx" grouping for +90; other
// dialing codes keep plain digits.
func FormatPhone(s, countryCode string) string {
	d := digits(s)
	if countryCode != "+90" {
		return d
	}
	if len(d) > 10 {
		d = d[:10]
	}
	switch {
	case len(d) <= 3:
		return d
	case len(d) <= 6:
		return d[:3] + " " + d[3:]
	case len(d) <= 8:
		return d[:3] + " " + d[3:6] + " " + d[6:]
	default:
		return d[:3] + " " + d[3:6] + " " + d[6:8] + " " + d[8:]
	}
}
