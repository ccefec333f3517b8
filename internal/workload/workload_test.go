// internal/workload/workload_test.go
package workload

import (
	"strings"
	"testing"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		spec     string
		wantName string
		wantArg  int64
	}{
		{name: "sleep with arg", spec: "sleep:25", wantName: "sleep", wantArg: 25},
		{name: "spin with arg", spec: "spin:100000", wantName: "spin", wantArg: 100000},
		{name: "hash with arg", spec: "hash:64", wantName: "hash", wantArg: 64},
		{name: "missing arg falls back to zero", spec: "spin", wantName: "spin", wantArg: 0},
		{name: "malformed arg falls back to zero", spec: "sleep:lots", wantName: "sleep", wantArg: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w, err := Resolve(tt.spec)
			if err != nil {
				t.Fatalf("Resolve(%q) error: %v", tt.spec, err)
			}
			if w.Name != tt.wantName {
				t.Fatalf("Resolve(%q).Name = %q, want %q", tt.spec, w.Name, tt.wantName)
			}
			if w.Arg != tt.wantArg {
				t.Fatalf("Resolve(%q).Arg = %d, want %d", tt.spec, w.Arg, tt.wantArg)
			}
			if w.Fn == nil {
				t.Fatalf("Resolve(%q) returned nil Fn", tt.spec)
			}
		})
	}
}

func TestResolveUnknownName(t *testing.T) {
	t.Parallel()

	_, err := Resolve("fibonacci:30")
	if err == nil {
		t.Fatal("expected error for unknown workload, got none")
	}
	if !strings.Contains(err.Error(), "fibonacci") {
		t.Fatalf("error should name the unknown workload: %v", err)
	}
}

func TestNamesSorted(t *testing.T) {
	t.Parallel()

	names := Names()
	if len(names) != len(builders) {
		t.Fatalf("Names() returned %d entries, want %d", len(names), len(builders))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("Names() not sorted: %v", names)
		}
	}
}

func TestWorkloadsRunToCompletion(t *testing.T) {
	t.Parallel()

	for _, spec := range []string{"sleep:0", "spin:1000", "hash:16"} {
		w, err := Resolve(spec)
		if err != nil {
			t.Fatalf("Resolve(%q) error: %v", spec, err)
		}
		w.Fn()
	}
}
