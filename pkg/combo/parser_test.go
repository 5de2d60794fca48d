package combo

import (
	"testing"
)

func TestParseSizeGroup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		variants []string
	}{
		{"two variants", "STM32F407V(E-G)Tx", []string{"E", "G"}},
		{"four variants", "STM32F100C(4-6-8-B)Tx", []string{"4", "6", "8", "B"}},
		{"single variant", "STM32F030C(8)Tx", []string{"8"}},
		{"no trailing text", "STM32F103C(8-B)", []string{"8", "B"}},
		{"no bracket", "STM32F030F4Px", nil},
		{"dash outside group", "STM32F303C(B-C)Tx-A", []string{"B", "C"}},
	}

	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, err := parser.ParseString(tt.input)
			if err != nil {
				t.Fatalf("ParseString(%q) failed: %v", tt.input, err)
			}
			group := name.SizeGroup()
			if tt.variants == nil {
				if group != nil {
					t.Fatalf("Expected no size group, got %v", group.Variants)
				}
				return
			}
			if group == nil {
				t.Fatalf("Expected size group %v, got none", tt.variants)
			}
			if len(group.Variants) != len(tt.variants) {
				t.Fatalf("Expected %d variants, got %v", len(tt.variants), group.Variants)
			}
			for i, v := range tt.variants {
				if group.Variants[i] != v {
					t.Errorf("Variant %d = %q, want %q", i, group.Variants[i], v)
				}
			}
			if got := name.String(); got != tt.input {
				t.Errorf("String() = %q, want %q", got, tt.input)
			}
		})
	}
}

func TestParseRejectsUnbalancedBrackets(t *testing.T) {
	for _, input := range []string{"STM32F407V(E-G", "STM32F407V(E-)Tx", "STM32F407V()Tx"} {
		if _, err := Parse(input); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", input)
		}
	}
}

func TestSizeGroupIndex(t *testing.T) {
	tests := []struct {
		combo  string
		sizeID string
		want   int
	}{
		{"STM32F100C(4-6-8-B)Tx", "6", 1},
		{"STM32F100C(4-6-8-B)Tx", "b", 3},
		{"STM32F407V(E-G)Tx", "g", 1},
		{"STM32F407V(E-G)Tx", "c", -1},
		{"STM32F030F4Px", "4", -1},
		{"", "4", -1},
	}

	for _, tt := range tests {
		name, err := Parse(tt.combo)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tt.combo, err)
		}
		if got := name.SizeGroup().Index(tt.sizeID); got != tt.want {
			t.Errorf("Parse(%q).SizeGroup().Index(%q) = %d, want %d", tt.combo, tt.sizeID, got, tt.want)
		}
	}
}
