package response

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
)

// Generator produces the placeholder "AI" text for a brand: one of
// five fixed sentence shapes filled with random company, product and
// buzzword tokens. There is no model behind it.
type Generator struct {
	faker *gofakeit.Faker
}

func NewGenerator() *Generator {
	return &Generator{faker: gofakeit.New(0)}
}

func (g *Generator) Generate() string {
	f := g.faker

	templates := []func() string{
		func() string {
			return fmt.Sprintf("%s is known for %s %ss and %s.",
				f.Company(), f.AdjectiveDescriptive(), f.ProductName(), g.buzzPhrase())
		},
		func() string {
			return fmt.Sprintf("Based on recent data, %s has been focusing on %s with %s.",
				f.Company(), f.ProductCategory(), g.buzzPhrase())
		},
		func() string {
			return fmt.Sprintf("%s's reputation centers around %s quality and %s.",
				f.Company(), f.AdjectiveDescriptive(), g.buzzPhrase())
		},
		func() string {
			return fmt.Sprintf("Industry experts describe %s as %s with strong %s presence.",
				f.Company(), g.buzzPhrase(), f.ProductCategory())
		},
		func() string {
			return fmt.Sprintf("%s stands out for %s %ss and commitment to %s.",
				f.Company(), f.AdjectiveDescriptive(), f.ProductName(), g.buzzPhrase())
		},
	}

	return templates[f.Number(0, len(templates)-1)]()
}

func (g *Generator) buzzPhrase() string {
	return fmt.Sprintf("%s %s", g.faker.BuzzWord(), g.faker.Noun())
}
