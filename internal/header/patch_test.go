package header

import (
	"strings"
	"testing"
)

const constantsH = `namespace Registers
{
/// Register for DMA control
static constexpr Register DMA_CONTROL(0x00000200);
static constexpr Register DMA_CONTROL_STATUS(0x00000210);
static constexpr IntervalRegister LINK_SUPERPAGE_ADDRESS_HIGH(0x00000204, LINK_INTERVAL);
//static constexpr Register LINKS_ENABLE = 0x604;
Register AT_COLUMN_ZERO(0x1);
} // namespace Registers
`

func TestPatchSingleValue(t *testing.T) {
	res := Patch("  Register FOO(0x1)\n", []Assignment{{Name: "FOO", Value: "0x9"}})
	if res.Text != "  Register FOO(0x9)\n" {
		t.Fatalf("unexpected text %q", res.Text)
	}
	if len(res.Changes) != 1 || res.Changes[0].Kind != KindSingle || res.Changes[0].Line != 1 {
		t.Fatalf("unexpected changes %+v", res.Changes)
	}
}

func TestPatchIntervalKeepsSecondArgument(t *testing.T) {
	res := Patch("  IntervalRegister FOO(0x1, 0x2)\n", []Assignment{{Name: "FOO", Value: "0x9"}})
	if res.Text != "  IntervalRegister FOO(0x9, 0x2)\n" {
		t.Fatalf("unexpected text %q", res.Text)
	}
	if res.Changes[0].Kind != KindInterval {
		t.Fatalf("expected interval change, got %+v", res.Changes[0])
	}
}

func TestPatchRewritesFirstGroupOnly(t *testing.T) {
	line := "  Register FOO(0x1); // was (0x0) before rev 2\n"
	res := Patch(line, []Assignment{{Name: "FOO", Value: "0x9"}})
	if res.Text != "  Register FOO(0x9); // was (0x0) before rev 2\n" {
		t.Fatalf("unexpected text %q", res.Text)
	}
}

func TestPatchHeader(t *testing.T) {
	values := []Assignment{
		{Name: "DMA_CONTROL", Value: "0x00000300"},
		{Name: "LINK_SUPERPAGE_ADDRESS_HIGH", Value: "0x00000304"},
		{Name: "LINKS_ENABLE", Value: "0x00000700"},
		{Name: "AT_COLUMN_ZERO", Value: "0x00000002"},
		{Name: "NOT_IN_HEADER", Value: "0x00000001"},
	}
	res := Patch(constantsH, values)

	want := strings.Replace(constantsH, "DMA_CONTROL(0x00000200)", "DMA_CONTROL(0x00000300)", 1)
	want = strings.Replace(want, "(0x00000204, LINK_INTERVAL)", "(0x00000304, LINK_INTERVAL)", 1)
	if res.Text != want {
		t.Fatalf("unexpected patched header:\n%s", res.Text)
	}

	if !strings.Contains(res.Text, "DMA_CONTROL_STATUS(0x00000210)") {
		t.Fatalf("longer name with the same prefix must not be patched")
	}
	if res.Matched["DMA_CONTROL"] != 1 || res.Matched["LINK_SUPERPAGE_ADDRESS_HIGH"] != 1 {
		t.Fatalf("unexpected match counts %v", res.Matched)
	}
	wantUnmatched := []string{"LINKS_ENABLE", "AT_COLUMN_ZERO", "NOT_IN_HEADER"}
	if strings.Join(res.Unmatched, ",") != strings.Join(wantUnmatched, ",") {
		t.Fatalf("expected unmatched %v, got %v", wantUnmatched, res.Unmatched)
	}
	if !res.Modified() {
		t.Fatalf("expected header to be modified")
	}
}

func TestPatchIsIdempotent(t *testing.T) {
	values := []Assignment{
		{Name: "DMA_CONTROL", Value: "0x00000300"},
		{Name: "LINK_SUPERPAGE_ADDRESS_HIGH", Value: "0x00000304"},
	}
	once := Patch(constantsH, values)
	twice := Patch(once.Text, values)
	if once.Text != twice.Text {
		t.Fatalf("second patch changed the text:\n%s\n---\n%s", once.Text, twice.Text)
	}
	if twice.Modified() {
		t.Fatalf("second patch should report no modification")
	}
}

func TestPatchLeavesUnmatchedLinesIdentical(t *testing.T) {
	text := "a\r\n  Register FOO(0x1); // (note)\r\nno trailing newline"
	res := Patch(text, []Assignment{{Name: "FOO", Value: "0x00000002"}})
	want := "a\r\n  Register FOO(0x00000002); // (note)\r\nno trailing newline"
	if res.Text != want {
		t.Fatalf("expected %q, got %q", want, res.Text)
	}

	if got := Patch(text, nil).Text; got != text {
		t.Fatalf("patching with no values must return the input, got %q", got)
	}
}
