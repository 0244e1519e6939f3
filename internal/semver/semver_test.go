package semver

import (
	"testing"
)

// TestParse tests strict version parsing
func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        Version
		expectError bool
	}{
		// Valid versions
		{
			name:  "simple version",
			input: "1.2.3",
			want:  Version{Major: 1, Minor: 2, Patch: 3},
		},
		{
			name:  "all zeros",
			input: "0.0.0",
			want:  Version{},
		},
		{
			name:  "multi digit components",
			input: "12.34.567",
			want:  Version{Major: 12, Minor: 34, Patch: 567},
		},

		// Invalid versions
		{
			name:        "two components",
			input:       "1.2",
			expectError: true,
		},
		{
			name:        "four components",
			input:       "1.2.3.4",
			expectError: true,
		},
		{
			name:        "empty string",
			input:       "",
			expectError: true,
		},
		{
			name:        "non-numeric component",
			input:       "a.b.c",
			expectError: true,
		},
		{
			name:        "negative component",
			input:       "1.2.-3",
			expectError: true,
		},
		{
			name:        "empty component",
			input:       "1..3",
			expectError: true,
		},
		{
			name:        "pre-release tag rejected",
			input:       "1.2.3-rc1",
			expectError: true,
		},
		{
			name:        "build metadata rejected",
			input:       "1.2.3+build5",
			expectError: true,
		},
		{
			name:        "leading v rejected",
			input:       "v1.2.3",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)

			if tt.expectError {
				if err == nil {
					t.Fatalf("Parse(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestBumpPatch tests that only the patch component changes
func TestBumpPatch(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "patch zero to one", input: "0.4.0", want: "0.4.1"},
		{name: "single digit rollover", input: "0.4.9", want: "0.4.10"},
		{name: "major minor untouched", input: "3.7.11", want: "3.7.12"},
		{name: "large patch", input: "1.0.999", want: "1.0.1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}

			bumped := v.BumpPatch()
			if got := bumped.String(); got != tt.want {
				t.Errorf("BumpPatch(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if bumped.Major != v.Major || bumped.Minor != v.Minor {
				t.Errorf("BumpPatch(%q) changed major/minor: got %v", tt.input, bumped)
			}
		})
	}
}

// TestBumpPatchNotIdempotent asserts each bump adds exactly one
func TestBumpPatchNotIdempotent(t *testing.T) {
	v, err := Parse("0.4.9")
	if err != nil {
		t.Fatalf("Parse unexpected error: %v", err)
	}

	once := v.BumpPatch()
	twice := once.BumpPatch()

	if once.Patch != v.Patch+1 {
		t.Errorf("first bump patch = %d, want %d", once.Patch, v.Patch+1)
	}
	if twice.Patch != v.Patch+2 {
		t.Errorf("second bump patch = %d, want %d", twice.Patch, v.Patch+2)
	}
	if once == twice {
		t.Error("bumping twice must not equal bumping once")
	}
}

// TestStringRoundTrip tests that parse then serialize is the identity
func TestStringRoundTrip(t *testing.T) {
	inputs := []string{"0.0.0", "0.4.9", "10.20.30", "1.0.1000"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			v, err := Parse(input)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", input, err)
			}
			if got := v.String(); got != input {
				t.Errorf("round trip of %q produced %q", input, got)
			}
		})
	}
}
