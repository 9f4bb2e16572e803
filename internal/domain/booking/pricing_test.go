package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceFor(t *testing.T) {
	tests := []struct {
		service string
		want    float64
	}{
		{ServiceBasic, 15.0},
		{ServiceDeluxe, 25.0},
		{ServiceRoyal, 50.0},
		{"unknown-tier", 15.0}, // falls back to basic
		{"", 15.0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PriceFor(tt.service), "service %q", tt.service)
	}
}

func TestCatalogue(t *testing.T) {
	services := Catalogue()

	assert.Len(t, services, 3)
	assert.Equal(t, ServiceBasic, services[0].ID)
	assert.Equal(t, ServiceRoyal, services[2].ID)

	for _, s := range services {
		assert.Equal(t, PriceFor(s.ID), s.Price)
		assert.NotEmpty(t, s.Title)
	}
}
