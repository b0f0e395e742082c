package generator

import (
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
)

// Generator produces synthetic identifier records.
// It is not safe for concurrent use.
type Generator struct {
	faker *gofakeit.Faker
}

// New creates a Generator. A seed of 0 draws a random seed, any other value
// makes the sequence of generated values reproducible.
func New(seed int64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

// Value generates one value of the given identifier type.
func (g *Generator) Value(t IdentifierType) (string, error) {
	tmpl, ok := templates[t]
	if !ok {
		return "", &ConfigurationError{Invalid: []string{string(t)}}
	}
	return g.fill(tmpl), nil
}

// fill expands a template. Lexify may return lowercase letters.
func (g *Generator) fill(tmpl string) string {
	return strings.ToUpper(g.faker.Lexify(g.faker.Numerify(tmpl)))
}

// Generate returns rows-1 records. Record i has type types[i % len(types)],
// so types are assigned round-robin in the order given.
func (g *Generator) Generate(rows int, types []IdentifierType) (RecordSet, error) {
	if err := Validate(rows, types); err != nil {
		return nil, err
	}

	records := make(RecordSet, 0, rows-1)
	for i := 0; i < rows-1; i++ {
		t := types[i%len(types)]
		records = append(records, Record{Type: t, Value: g.fill(templates[t])})
	}
	return records, nil
}

// Validate checks the arguments Generate would be called with.
func Validate(rows int, types []IdentifierType) error {
	if rows < 1 {
		return &ConfigurationError{Reason: fmt.Sprintf("row count must be at least 1, got %d", rows)}
	}
	return ValidateTypes(types)
}
