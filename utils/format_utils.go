package utils

import "strconv"

// FormatVND renders an integer VND amount with dot thousand separators, the
// way Vietnamese storefronts print money (e.g. 1250000 -> "1.250.000 ₫").
func FormatVND(amount int64) string {
	digits := strconv.FormatInt(amount, 10)
	negative := false
	if len(digits) > 0 && digits[0] == '-' {
		negative = true
		digits = digits[1:]
	}

	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}

	result := string(out) + " ₫"
	if negative {
		result = "-" + result
	}
	return result
}
