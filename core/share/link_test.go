package share

import (
	"testing"

	"github.com/gaurav-prasanna/convopdf/config"
)

func newTestRules(t *testing.T) *Rules {
	t.Helper()
	r, err := NewRules(config.Default())
	if err != nil {
		t.Fatalf("NewRules: %v", err)
	}
	return r
}

const validID = "3fa85f64-5717-4562-b3fc-2c963f66afa6"

func TestValidate(t *testing.T) {
	r := newTestRules(t)

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"lowercase hex", "https://claude.ai/share/" + validID, true},
		{"uppercase hex", "https://claude.ai/share/3FA85F64-5717-4562-B3FC-2C963F66AFA6", true},
		{"subdomain host", "https://www.claude.ai/share/" + validID, true},
		{"http scheme", "http://claude.ai/share/" + validID, true},
		{"wrong host", "https://example.com/share/" + validID, false},
		{"missing prefix", "https://claude.ai/" + validID, false},
		{"wrong prefix", "https://claude.ai/shared/abc", false},
		{"token too short", "https://claude.ai/share/3fa85f64-5717", false},
		{"non-hex token", "https://claude.ai/share/3fa85g64-5717-4562-b3fc-2c963f66afa6", false},
		{"missing hyphens", "https://claude.ai/share/3fa85f6457174562b3fc2c963f66afa6", false},
		{"trailing slash", "https://claude.ai/share/" + validID + "/", false},
		{"empty string", "", false},
		{"non-URL garbage", "https://claude.ai/share/%zz", false},
		{"no scheme", "claude.ai/share/" + validID, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Validate(tt.input); got != tt.want {
				t.Errorf("Validate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// ExtractID must return a value exactly when Validate returns true, and
// the value must match the token shape.
func TestExtractID_AgreesWithValidate(t *testing.T) {
	r := newTestRules(t)

	inputs := []string{
		"https://claude.ai/share/" + validID,
		"https://claude.ai/shared/abc",
		"https://example.com/share/" + validID,
		"",
		"https://claude.ai/share/xyz",
	}
	for _, input := range inputs {
		id, ok := r.ExtractID(input)
		if ok != r.Validate(input) {
			t.Errorf("ExtractID(%q) ok=%v disagrees with Validate", input, ok)
		}
		if ok && !r.token.MatchString(id) {
			t.Errorf("ExtractID(%q) = %q does not match token shape", input, id)
		}
	}
}

func TestExtractID_Value(t *testing.T) {
	r := newTestRules(t)
	id, ok := r.ExtractID("https://claude.ai/share/" + validID)
	if !ok {
		t.Fatal("ExtractID returned absent for a valid link")
	}
	if id != validID {
		t.Errorf("ExtractID = %q, want %q", id, validID)
	}
}

func TestShareURL_RoundTrip(t *testing.T) {
	r := newTestRules(t)
	link := r.ShareURL(validID)
	if link != "https://claude.ai/share/"+validID {
		t.Errorf("ShareURL = %q", link)
	}
	if !r.Validate(link) {
		t.Error("reconstructed link does not validate")
	}
}

func TestParse(t *testing.T) {
	r := newTestRules(t)

	ref, ok := r.Parse("https://claude.ai/share/" + validID)
	if !ok {
		t.Fatal("Parse rejected a valid link")
	}
	if ref.ID != validID {
		t.Errorf("ref.ID = %q, want %q", ref.ID, validID)
	}
	if ref.Raw != "https://claude.ai/share/"+validID {
		t.Errorf("ref.Raw = %q", ref.Raw)
	}

	if _, ok := r.Parse("https://claude.ai/shared/abc"); ok {
		t.Error("Parse accepted a malformed link")
	}
}

func TestNewRules_BadPattern(t *testing.T) {
	cfg := config.Default()
	cfg.TokenPattern = "(["
	if _, err := NewRules(cfg); err == nil {
		t.Error("NewRules accepted an invalid token pattern")
	}
}
