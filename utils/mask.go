package utils

// MaskSensitive obscures an identifier-looking value (DNI, phone number)
// before it is echoed back in a reply. Values of four characters or fewer
// are masked entirely; longer values keep only the first and last two
// characters.
func MaskSensitive(v string) string {
	if v == "" {
		return ""
	}
	if len(v) <= 4 {
		return "****"
	}
	return v[:2] + "****" + v[len(v)-2:]
}
