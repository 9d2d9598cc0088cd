package main

import (
	"testing"

	"github.com/jtay/glowcube/pkg/core"
)

func TestParseLedColor(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    core.Vec3
		expectError bool
	}{
		{"off", "off", core.Vec3{}, false},
		{"green", "green", core.NewVec3(0, 1, 0), false},
		{"red", "red", core.NewVec3(1, 0, 0), false},
		{"unknown color", "blue", core.Vec3{}, true},
		{"empty string", "", core.Vec3{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLedColor(tt.input)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for %q, got none", tt.input)
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error for %q: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("Expected %v for %q, got %v", tt.expected, tt.input, got)
			}
		})
	}
}
