package generator

// Template placeholders: '#' is replaced by a random digit, '?' by a random
// uppercase letter. Every other character is copied as is.
var templates = map[IdentifierType]string{
	Aadhar:         "####-####-####",
	PAN:            "?????####?",
	VoterID:        "???#######",
	Passport:       "?#######",
	DrivingLicense: "DL-#############",
}

// Template returns the value template for an identifier type.
// Returns false if the type is not supported.
func Template(t IdentifierType) (string, bool) {
	tmpl, ok := templates[t]
	return tmpl, ok
}
