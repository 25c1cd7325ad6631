package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"g2dgen/internal/host"
	"g2dgen/internal/version"
)

const selectionDoc = `{"selection":[{"type":"GROUP","name":"g","children":[
  {"type":"VECTOR","name":"a","x":10,"y":10,"vectorPaths":[{"windingRule":"NONZERO","data":"M 0 0 L 5 0"}]},
  {"type":"TEXT","name":"label"},
  {"type":"VECTOR","name":"b","x":0,"y":0,"vectorPaths":[{"windingRule":"NONZERO","data":"M 0 0 C 0 10 10 10 10 0"}]}
]}]}`

// runCLI runs the command against an isolated config file.
func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"--config", cfg}, args...), strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestVersion(t *testing.T) {
	code, out, _ := runCLI(t, "", "version")
	if code != 0 || strings.TrimSpace(out) != version.String() {
		t.Fatalf("version: code=%d out=%q", code, out)
	}
}

func TestEmitLine(t *testing.T) {
	code, out, errOut := runCLI(t, "", "emit", "--origin-x=100", "--origin-y=200", "M 0 0 L 10 20")
	if code != 0 {
		t.Fatalf("emit failed: %s", errOut)
	}
	if out != "g2d.drawLine(100, 200, 110, 220);\n" {
		t.Fatalf("emit output = %q", out)
	}
}

func TestEmitFromStdinWithEnvStyle(t *testing.T) {
	t.Setenv("G2D_COLOR", "red")
	t.Setenv("G2D_STROKE_WEIGHT", "2")
	code, out, errOut := runCLI(t, "M0 0 C1 2 3 4 5 6\n", "emit", "-")
	if code != 0 {
		t.Fatalf("emit failed: %s", errOut)
	}
	want := "drawArc(g2d, new Point(0, 0), new Point(1, 2), new Point(3, 4), new Point(5, 6), 2, Color.RED);\n"
	if out != want {
		t.Fatalf("emit output = %q, want %q", out, want)
	}
}

func TestEmitReportsDecodeError(t *testing.T) {
	code, out, errOut := runCLI(t, "", "emit", "M0 0 X5 5")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if out != "" {
		t.Fatalf("unexpected output on failure: %q", out)
	}
	if !strings.Contains(errOut, "unsupported path command") {
		t.Fatalf("stderr = %q", errOut)
	}
}

func TestDecodeText(t *testing.T) {
	code, out, errOut := runCLI(t, "", "decode", "M0 0 L10 10")
	if code != 0 {
		t.Fatalf("decode failed: %s", errOut)
	}
	if out != "0 0 line\n10 10 line\n" {
		t.Fatalf("decode output = %q", out)
	}
}

func TestDecodeJSON(t *testing.T) {
	code, out, errOut := runCLI(t, "", "decode", "--json", "--origin-x=1", "M0 0 L10 10")
	if code != 0 {
		t.Fatalf("decode failed: %s", errOut)
	}
	var got []map[string]any
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode --json output not JSON: %v\n%s", err, out)
	}
	want := []map[string]any{
		{"x": 1.0, "y": 0.0, "type": "line"},
		{"x": 11.0, "y": 10.0, "type": "line"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("decode --json mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateToFile(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "selection.json")
	if err := os.WriteFile(doc, []byte(selectionDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	outPath := filepath.Join(dir, "out.java")
	code, out, errOut := runCLI(t, "", "generate", doc, "-o", outPath)
	if code != 0 {
		t.Fatalf("generate failed: %s", errOut)
	}
	if out != "" {
		t.Fatalf("stdout should stay empty with -o, got %q", out)
	}
	b, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := "g2d.drawLine(10, 10, 15, 10);\n" +
		"drawArc(g2d, new Point(0, 0), new Point(0, 10), new Point(10, 10), new Point(10, 0), 1, Color.WHITE);\n"
	if string(b) != want {
		t.Fatalf("generated file = %q, want %q", b, want)
	}
}

func TestGenerateFromStdinRejectsBadDocument(t *testing.T) {
	code, _, errOut := runCLI(t, `{"selection":[{"name":"no type"}]}`, "generate", "-")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(errOut, "does not match schema") {
		t.Fatalf("stderr = %q", errOut)
	}
}

func TestRelaySession(t *testing.T) {
	doc := filepath.Join(t.TempDir(), "selection.json")
	if err := os.WriteFile(doc, []byte(selectionDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	in := `{"type":"show-toast","message":"hello"}` + "\n" +
		`{"type":"generate-code"}` + "\n" +
		`{"type":"cancel"}` + "\n" +
		`{"type":"generate-code"}` + "\n"
	code, out, errOut := runCLI(t, in, "relay", doc)
	if code != 0 {
		t.Fatalf("relay failed: %s", errOut)
	}
	var replies []host.Reply
	dec := json.NewDecoder(strings.NewReader(out))
	for dec.More() {
		var r host.Reply
		if err := dec.Decode(&r); err != nil {
			t.Fatalf("bad reply: %v", err)
		}
		replies = append(replies, r)
	}
	want := []host.Reply{
		{Type: host.ReplyToast, Message: "hello", TimeoutMs: 5000},
		{Type: host.ReplyCodeGenerated, Code: "g2d.drawLine(10, 10, 15, 10);\n" +
			"drawArc(g2d, new Point(0, 0), new Point(0, 10), new Point(10, 10), new Point(10, 0), 1, Color.WHITE);"},
	}
	if diff := cmp.Diff(want, replies); diff != "" {
		t.Fatalf("relay replies mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigInitAndShow(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "g2dgen", "config.yaml")
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--config", cfg, "config", "init"}, strings.NewReader(""), &stdout, &stderr); code != 0 {
		t.Fatalf("config init failed: %s", stderr.String())
	}
	if strings.TrimSpace(stdout.String()) != cfg {
		t.Fatalf("config init printed %q", stdout.String())
	}
	stderr.Reset()
	if code := run([]string{"--config", cfg, "config", "init"}, strings.NewReader(""), &stdout, &stderr); code != 1 {
		t.Fatalf("second config init should refuse to overwrite")
	}

	t.Setenv("G2D_ARC_FUNC", "curve")
	stdout.Reset()
	if code := run([]string{"--config", cfg, "config", "show"}, strings.NewReader(""), &stdout, &stderr); code != 0 {
		t.Fatalf("config show failed: %s", stderr.String())
	}
	out := stdout.String()
	for _, s := range []string{"arc_func: curve", "graphics_var: g2d", "# emit.arc_func overridden by G2D_ARC_FUNC"} {
		if !strings.Contains(out, s) {
			t.Fatalf("config show missing %q:\n%s", s, out)
		}
	}
}

func TestBrokenExplicitConfigFails(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfg, []byte("emit: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--config", cfg, "version"}, strings.NewReader(""), &stdout, &stderr); code != 1 {
		t.Fatalf("expected failure for broken config, got %d", code)
	}
}
