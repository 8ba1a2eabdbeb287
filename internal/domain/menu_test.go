package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	tests := map[string]struct {
		amount   int
		expected string
	}{
		"zero":         {amount: 0, expected: "₹0"},
		"hundreds":     {amount: 450, expected: "₹450"},
		"thousand":     {amount: 1200, expected: "₹1,200"},
		"ten-thousand": {amount: 12500, expected: "₹12,500"},
		"lakh":         {amount: 100000, expected: "₹1,00,000"},
		"crore":        {amount: 12345678, expected: "₹1,23,45,678"},
		"negative":     {amount: -1500, expected: "-₹1,500"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatINR(tt.amount))
		})
	}
}

func TestParseDietaryPreference(t *testing.T) {
	tests := map[string]struct {
		input     string
		expected  DietaryPreference
		expectErr bool
	}{
		"empty-means-none": {input: "", expected: DietaryPreference_None},
		"vegan":            {input: "vegan", expected: DietaryPreference_Vegan},
		"mixed-case":       {input: " Gluten-Free ", expected: DietaryPreference_GlutenFree},
		"non-vegetarian":   {input: "non-vegetarian", expected: DietaryPreference_NonVegetarian},
		"unknown":          {input: "keto", expectErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseDietaryPreference(tt.input)
			if tt.expectErr {
				var vErr *ValidationErr
				assert.ErrorAs(t, err, &vErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMenuSpecial_Price(t *testing.T) {
	assert.Equal(t, "₹1,200", MenuSpecial{PriceINR: 1200}.Price())
}
