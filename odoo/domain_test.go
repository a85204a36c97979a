package odoo

import (
	"reflect"
	"testing"
)

func TestDomainSearch_TwoFields(t *testing.T) {
	domain := Domain{}.Search([]string{"name", "default_code"}, "foo")

	expected := []any{
		"|",
		[]any{"name", "ilike", "foo"},
		[]any{"default_code", "ilike", "foo"},
	}

	if !reflect.DeepEqual(domain.Wire(), expected) {
		t.Errorf("Expected %v, got %v", expected, domain.Wire())
	}
}

func TestDomainSearch_EmptyValue(t *testing.T) {
	domain := Domain{}.Search([]string{"name", "default_code"}, "")

	if len(domain) != 0 {
		t.Errorf("Expected empty domain, got %v", domain)
	}

	wire := domain.Wire()
	if len(wire) != 0 {
		t.Errorf("Expected empty wire form, got %v", wire)
	}
}

func TestDomainSearch_LeftFold(t *testing.T) {
	// Three alternatives must produce two OR tokens then the three
	// terms, the n-ary prefix form.
	domain := Domain{}.Search([]string{"name", "default_code", "barcode"}, "x")

	expected := []any{
		"|",
		"|",
		[]any{"name", "ilike", "x"},
		[]any{"default_code", "ilike", "x"},
		[]any{"barcode", "ilike", "x"},
	}

	if !reflect.DeepEqual(domain.Wire(), expected) {
		t.Errorf("Expected %v, got %v", expected, domain.Wire())
	}
}

func TestDomainSearch_SingleField(t *testing.T) {
	domain := Domain{}.Search([]string{"name"}, "foo")

	expected := []any{[]any{"name", "ilike", "foo"}}

	if !reflect.DeepEqual(domain.Wire(), expected) {
		t.Errorf("Expected %v, got %v", expected, domain.Wire())
	}
}

func TestDomainEquals(t *testing.T) {
	testCases := []struct {
		name     string
		field    string
		value    string
		expected []any
	}{
		{
			name:     "Value present",
			field:    "type",
			value:    "lead",
			expected: []any{[]any{"type", "=", "lead"}},
		},
		{
			name:     "Dotted path passes through verbatim",
			field:    "stage_id.name",
			value:    "Qualified",
			expected: []any{[]any{"stage_id.name", "=", "Qualified"}},
		},
		{
			name:     "Empty value appends nothing",
			field:    "type",
			value:    "",
			expected: []any{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			domain := Domain{}.Equals(tc.field, tc.value)
			if !reflect.DeepEqual(domain.Wire(), tc.expected) {
				t.Errorf("Expected %v, got %v", tc.expected, domain.Wire())
			}
		})
	}
}

func TestDomainContains_EmptyValue(t *testing.T) {
	domain := Domain{}.Contains("name", "")
	if len(domain) != 0 {
		t.Errorf("Expected empty domain, got %v", domain)
	}
}

func TestDomainChaining(t *testing.T) {
	domain := Domain{}.
		Equals("type", "lead").
		Search([]string{"name", "phone"}, "ana")

	expected := []any{
		[]any{"type", "=", "lead"},
		"|",
		[]any{"name", "ilike", "ana"},
		[]any{"phone", "ilike", "ana"},
	}

	if !reflect.DeepEqual(domain.Wire(), expected) {
		t.Errorf("Expected %v, got %v", expected, domain.Wire())
	}
}

func TestDomainWire_Nil(t *testing.T) {
	var domain Domain
	wire := domain.Wire()
	if wire == nil || len(wire) != 0 {
		t.Errorf("Expected empty non-nil wire form, got %v", wire)
	}
}
