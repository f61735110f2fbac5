//nolint:testpackage // White-box tests for normalization behavior
package normalizer

import (
	"strings"
	"testing"

	"github.com/civicgrid/triage/internal/data"
	"github.com/civicgrid/triage/internal/logger"
)

func newTestNormalizer() *Normalizer {
	return New(data.CivicTerms(), logger.NewNop())
}

func TestNormalizeAppendsCanonicalTerm(t *testing.T) {
	t.Helper()

	n := newTestNormalizer()
	got := n.Normalize("road la kuzhi iruku")

	if !strings.HasPrefix(got, "road la kuzhi iruku") {
		t.Errorf("original text altered: %q", got)
	}
	if !strings.Contains(got, "[Detected Intent:") {
		t.Errorf("missing intent annotation: %q", got)
	}
	if !strings.Contains(got, "pothole / ditch on road") {
		t.Errorf("missing canonical term: %q", got)
	}
}

func TestNormalizeTamilScript(t *testing.T) {
	t.Helper()

	n := newTestNormalizer()
	got := n.Normalize("தெரு விளக்கு எரியல")

	if !strings.Contains(got, "street light") {
		t.Errorf("Tamil script phrase not recognized: %q", got)
	}
	if !strings.Contains(got, "not glowing / light not working") {
		t.Errorf("second phrase not recognized: %q", got)
	}
}

func TestNormalizeCollapsesDuplicateCanonicals(t *testing.T) {
	t.Helper()

	// "vilakku" and "theru vilakku" both map to "street light".
	n := newTestNormalizer()
	got := n.Normalize("theru vilakku problem")

	if strings.Count(got, "street light") != 1 {
		t.Errorf("duplicate canonical terms not collapsed: %q", got)
	}
}

func TestNormalizeNoMatchesReturnsInputUnchanged(t *testing.T) {
	t.Helper()

	n := newTestNormalizer()
	in := "The traffic signal timing is wrong"
	if got := n.Normalize(in); got != in {
		t.Errorf("Normalize(%q) = %q, want unchanged", in, got)
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	t.Helper()

	n := newTestNormalizer()
	if got := n.Normalize(""); got != "" {
		t.Errorf("Normalize(\"\") = %q, want empty", got)
	}
}

func TestNormalizePreservesCasing(t *testing.T) {
	t.Helper()

	n := newTestNormalizer()
	got := n.Normalize("KUPPAI everywhere")
	if !strings.HasPrefix(got, "KUPPAI everywhere") {
		t.Errorf("casing not preserved: %q", got)
	}
	if !strings.Contains(got, "garbage / waste") {
		t.Errorf("uppercase colloquial not matched: %q", got)
	}
}
