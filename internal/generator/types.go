package generator

import (
	"fmt"
	"strings"
)

// IdentifierType names a category of synthetic personal identifier.
type IdentifierType string

const (
	Aadhar         IdentifierType = "Aadhar"
	PAN            IdentifierType = "PAN"
	VoterID        IdentifierType = "VoterID"
	Passport       IdentifierType = "Passport"
	DrivingLicense IdentifierType = "DrivingLicense"
)

// AllTypes returns every supported identifier type in canonical order.
// A new slice is returned on each call.
func AllTypes() []IdentifierType {
	return []IdentifierType{Aadhar, PAN, VoterID, Passport, DrivingLicense}
}

// Valid reports whether t is one of the supported identifier types.
func (t IdentifierType) Valid() bool {
	_, ok := templates[t]
	return ok
}

// Record is a single generated identifier.
type Record struct {
	Type  IdentifierType `json:"ID_Type"`
	Value string         `json:"ID_Value"`
}

// RecordSet is the ordered list of records written to one output file.
type RecordSet []Record

// ConfigurationError reports an unusable identifier type selection or row count.
type ConfigurationError struct {
	Invalid []string // unknown type names, if any
	Reason  string
}

func (e *ConfigurationError) Error() string {
	if len(e.Invalid) > 0 {
		return fmt.Sprintf("invalid ID types: %s. Supported types are: %s",
			strings.Join(e.Invalid, ", "), strings.Join(typeNames(AllTypes()), ", "))
	}
	return e.Reason
}

// ParseTypes converts type names into identifier types.
// Names are matched exactly. Duplicates are dropped, keeping the first occurrence,
// so the result preserves the order in which types were enabled.
func ParseTypes(names []string) ([]IdentifierType, error) {
	if len(names) == 0 {
		return nil, &ConfigurationError{Reason: "no ID types enabled"}
	}

	var invalid []string
	seen := make(map[IdentifierType]bool, len(names))
	types := make([]IdentifierType, 0, len(names))
	for _, name := range names {
		t := IdentifierType(name)
		if !t.Valid() {
			invalid = append(invalid, name)
			continue
		}
		if seen[t] {
			continue
		}
		seen[t] = true
		types = append(types, t)
	}

	if len(invalid) > 0 {
		return nil, &ConfigurationError{Invalid: invalid}
	}
	return types, nil
}

// ValidateTypes checks that types is non-empty and holds only supported types.
func ValidateTypes(types []IdentifierType) error {
	if len(types) == 0 {
		return &ConfigurationError{Reason: "no ID types enabled"}
	}

	var invalid []string
	for _, t := range types {
		if !t.Valid() {
			invalid = append(invalid, string(t))
		}
	}
	if len(invalid) > 0 {
		return &ConfigurationError{Invalid: invalid}
	}
	return nil
}

func typeNames(types []IdentifierType) []string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return names
}
