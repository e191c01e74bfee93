package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/cvkit/md2cv/internal/yamlutil"
)

type testMeta struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Count int    `yaml:"count"`
}

// ---------------------------------------------------------------------------
// TestUnmarshal - Parses YAML into Go values
// ---------------------------------------------------------------------------

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		check   func(t *testing.T, v any)
	}{
		{
			name: "valid YAML",
			data: []byte("name: Jane Doe\nemail: jane@example.com\ncount: 3"),
			dest: &testMeta{},
			check: func(t *testing.T, v any) {
				m := v.(*testMeta)
				if m.Name != "Jane Doe" {
					t.Errorf("Name = %q, want %q", m.Name, "Jane Doe")
				}
				if m.Email != "jane@example.com" {
					t.Errorf("Email = %q, want %q", m.Email, "jane@example.com")
				}
				if m.Count != 3 {
					t.Errorf("Count = %d, want 3", m.Count)
				}
			},
		},
		{
			name: "mapping with sequence values",
			data: []byte("skills:\n  - go\n  - sql"),
			dest: &map[string]any{},
			check: func(t *testing.T, v any) {
				m := *v.(*map[string]any)
				seq, ok := m["skills"].([]any)
				if !ok || len(seq) != 2 {
					t.Fatalf("skills = %#v, want 2-element sequence", m["skills"])
				}
			},
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &testMeta{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("name: test"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
		{
			name:    "invalid YAML syntax",
			data:    []byte("name: [unclosed"),
			dest:    &testMeta{},
			wantErr: errors.New("yamlutil:"), // partial match
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Unmarshal(tt.data, tt.dest)
			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.wantErr)
				}
				if errors.Is(err, tt.wantErr) {
					return
				}
				if !strings.Contains(err.Error(), tt.wantErr.Error()) {
					t.Fatalf("error = %q, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, tt.dest)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRoundTrip - Verifies Marshal/Unmarshal symmetry for mappings
// ---------------------------------------------------------------------------

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	original := map[string]any{
		"name":   "Jane Doe",
		"email":  "jane@example.com",
		"skills": []any{"go", "sql"},
	}

	data, err := yamlutil.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	decoded := map[string]any{}
	if err := yamlutil.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if decoded["name"] != "Jane Doe" {
		t.Errorf("name = %v, want Jane Doe", decoded["name"])
	}
	if decoded["email"] != "jane@example.com" {
		t.Errorf("email = %v, want jane@example.com", decoded["email"])
	}
	skills, ok := decoded["skills"].([]any)
	if !ok || len(skills) != 2 || skills[0] != "go" {
		t.Errorf("skills = %#v, want [go sql]", decoded["skills"])
	}
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Rejects unknown fields
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	var m testMeta
	err := yamlutil.UnmarshalStrict([]byte("name: x\nsurprise: y"), &m)
	if err == nil {
		t.Fatal("expected error on unknown field, got nil")
	}
	if !strings.HasPrefix(err.Error(), "yamlutil:") {
		t.Errorf("error = %q, want yamlutil: prefix", err)
	}
}

// ---------------------------------------------------------------------------
// TestInputSizeLimit - Verifies MaxInputSize enforcement
// ---------------------------------------------------------------------------

// Modifies the global MaxInputSize, so not parallel.

func TestInputSizeLimit(t *testing.T) {
	originalMax := yamlutil.MaxInputSize
	t.Cleanup(func() { yamlutil.MaxInputSize = originalMax })

	yamlutil.MaxInputSize = 64

	data := make([]byte, 65)
	copy(data, []byte("name: x"))
	var m testMeta
	if err := yamlutil.Unmarshal(data, &m); !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("errors.Is(err, ErrInputTooLarge) = false, got: %v", err)
	}

	if err := yamlutil.Unmarshal(data[:64], &m); err != nil {
		t.Errorf("input at limit: unexpected error: %v", err)
	}
}
