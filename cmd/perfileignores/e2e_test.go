package main_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary once for all tests
	tmpDir, err := os.MkdirTemp("", "perfileignores-e2e-*")
	if err != nil {
		panic(err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	binaryPath = filepath.Join(tmpDir, "perfileignores")
	cmd := exec.Command("go", "build", "-o", binaryPath, ".")
	cmd.Dir = filepath.Join(getModuleRoot(), "cmd", "perfileignores")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic(string(out) + ": " + err.Error())
	}

	os.Exit(m.Run())
}

func getModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			// Make sure it's the main module, not a testdata module
			if _, err := os.Stat(filepath.Join(dir, "perfileignores.go")); err == nil {
				return dir
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			panic("module root not found")
		}
		dir = parent
	}
}

// writeProject creates a module with one file tripping all three bundled
// analyzers: a TODO comment, a long line and a fmt.Println call.
func writeProject(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/demo\n\ngo 1.21\n"), 0644); err != nil {
		t.Fatal(err)
	}

	mainSrc := `package main

import "fmt"

// TODO tighten the output format
func main() {
	fmt.Println("` + strings.Repeat("x", 130) + `")
}
`
	if err := os.WriteFile(filepath.Join(dir, "main.go"), []byte(mainSrc), 0644); err != nil {
		t.Fatal(err)
	}

	return dir
}

func TestE2E_AllDiagnosticsWithoutConfig(t *testing.T) {
	dir := writeProject(t)

	cmd := exec.Command(binaryPath, "./...")
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()

	// Should exit with non-zero (has diagnostics)
	if err == nil {
		t.Fatal("expected non-zero exit code for code with issues")
	}

	output := string(out)

	for _, want := range []string{
		"comment contains a TODO marker",
		"line is",
		"call to fmt.Println",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got:\n%s", want, output)
		}
	}
}

func TestE2E_PerFileIgnoresFlag(t *testing.T) {
	dir := writeProject(t)

	cmd := exec.Command(binaryPath, "-per-file-ignores=main.go:todo-comment,line-too-long", "./...")
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()

	// printcall still fires, so the exit code stays non-zero
	if err == nil {
		t.Fatal("expected non-zero exit code for remaining diagnostics")
	}

	output := string(out)

	if strings.Contains(output, "TODO marker") {
		t.Errorf("todo-comment should be suppressed, got:\n%s", output)
	}
	if strings.Contains(output, "line is") {
		t.Errorf("line-too-long should be suppressed, got:\n%s", output)
	}
	if !strings.Contains(output, "call to fmt.Println") {
		t.Errorf("print-call should still be reported, got:\n%s", output)
	}
}

func TestE2E_YAMLConfigAutoDetect(t *testing.T) {
	dir := writeProject(t)

	config := `- pattern: "main.go"
  rules: [todo-comment, line-too-long, print-call]
`
	if err := os.WriteFile(filepath.Join(dir, ".perfileignores.yml"), []byte(config), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := exec.Command(binaryPath, "./...")
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()

	// Everything suppressed: clean exit
	if err != nil {
		t.Errorf("expected zero exit code with all rules suppressed, got error: %v\noutput:\n%s", err, out)
	}
}

func TestE2E_UnknownRuleFailsBeforeAnalysis(t *testing.T) {
	dir := writeProject(t)

	cmd := exec.Command(binaryPath, "-per-file-ignores=main.go:no-such-rule", "./...")
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()

	if err == nil {
		t.Fatal("expected non-zero exit code for unknown rule token")
	}

	output := string(out)

	if !strings.Contains(output, `unknown rule "no-such-rule"`) {
		t.Errorf("expected unknown rule error, got:\n%s", output)
	}
	// Analysis never starts, so no diagnostics appear either
	if strings.Contains(output, "call to fmt.Println") {
		t.Errorf("expected no diagnostics after failed configuration load, got:\n%s", output)
	}
}

func TestE2E_FileIgnoreDirective(t *testing.T) {
	dir := t.TempDir()

	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/clean\n\ngo 1.21\n"), 0644); err != nil {
		t.Fatal(err)
	}

	src := `package main

//perfileignores:ignore print-call - intentional CLI output

import "fmt"

func main() {
	fmt.Println("hello")
}
`
	if err := os.WriteFile(filepath.Join(dir, "main.go"), []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := exec.Command(binaryPath, "./...")
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()

	if err != nil {
		t.Errorf("expected zero exit code with directive in place, got error: %v\noutput:\n%s", err, out)
	}
}
