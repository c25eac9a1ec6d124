package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cyb3rnet/xhtml/internal/errors"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--no-color"))
	err := cmd.Execute()
	return out.String(), err
}

func initProject(t *testing.T, args ...string) string {
	t.Helper()
	dir := t.TempDir()
	if _, err := run(t, append([]string{"init", dir}, args...)...); err != nil {
		t.Fatalf("init error: %v", err)
	}
	return dir
}

func TestInit(t *testing.T) {
	dir := initProject(t, "--lang=fr")

	for _, name := range []string{"xhtml.json", "page.yaml"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s not created: %v", name, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "xhtml.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"lang": "fr"`) {
		t.Errorf("xhtml.json = %s", data)
	}

	_, err = run(t, "init", dir)
	if code := errors.CodeOf(err); code != errors.CodeConfigInvalid {
		t.Errorf("second init code = %q, want %q", code, errors.CodeConfigInvalid)
	}
	if _, err := run(t, "init", dir, "--force"); err != nil {
		t.Errorf("init --force error: %v", err)
	}
}

func TestInitRejectsMissingEncoding(t *testing.T) {
	_, err := run(t, "init", t.TempDir(), "--encoding=")
	if code := errors.CodeOf(err); code != errors.CodeMissingInitParameter {
		t.Errorf("code = %q, want %q", code, errors.CodeMissingInitParameter)
	}
}

func TestBuild(t *testing.T) {
	dir := initProject(t)
	cfgPath := filepath.Join(dir, "xhtml.json")

	out, err := run(t, "build", "--config", cfgPath, "--check")
	if err != nil {
		t.Fatalf("build error: %v", err)
	}
	if !strings.Contains(out, "Built") {
		t.Errorf("output = %q", out)
	}

	data, err := os.ReadFile(filepath.Join(dir, "dist", "index.html"))
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	doc := string(data)
	if !strings.HasPrefix(doc, "<!DOCTYPE html PUBLIC") {
		t.Errorf("document should start with the doctype: %q", doc)
	}
	for _, want := range []string{`<html lang="en">`, "<title>Hello</title>", "<h1>Hello</h1>", "<em>page.yaml</em>"} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q: %s", want, doc)
		}
	}
}

func TestBuildStdout(t *testing.T) {
	dir := initProject(t)
	out, err := run(t, "build", "--config", filepath.Join(dir, "xhtml.json"), "--stdout")
	if err != nil {
		t.Fatalf("build error: %v", err)
	}
	if !strings.HasSuffix(out, "</body></html>") {
		t.Errorf("stdout = %q", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "dist")); !os.IsNotExist(err) {
		t.Error("--stdout should not write the output file")
	}
}

func TestBuildBlueprintErrors(t *testing.T) {
	tests := []struct {
		name      string
		blueprint string
		code      string
	}{
		{"bad yaml", "body: [", errors.CodeBlueprintParse},
		{"unknown element", "body:\n  content:\n    - tag: widget\n", errors.CodeUnknownElement},
		{"unknown key", "body:\n  content:\n    - tag: p\n      colour: red\n", errors.CodeBlueprintInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := initProject(t)
			if err := os.WriteFile(filepath.Join(dir, "page.yaml"), []byte(tt.blueprint), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := run(t, "build", "--config", filepath.Join(dir, "xhtml.json"))
			if code := errors.CodeOf(err); code != tt.code {
				t.Errorf("code = %q, want %q (err: %v)", code, tt.code, err)
			}
		})
	}
}

func TestBuildMissingConfig(t *testing.T) {
	_, err := run(t, "build", "--config", filepath.Join(t.TempDir(), "xhtml.json"))
	if code := errors.CodeOf(err); code != errors.CodeConfigNotFound {
		t.Errorf("code = %q, want %q", code, errors.CodeConfigNotFound)
	}
}

func TestCheck(t *testing.T) {
	dir := initProject(t)
	out, err := run(t, "check", "--config", filepath.Join(dir, "xhtml.json"))
	if err != nil {
		t.Fatalf("check error: %v", err)
	}
	if !strings.Contains(out, "well-formed (root <html>") {
		t.Errorf("output = %q", out)
	}
}

func TestInspect(t *testing.T) {
	dir := initProject(t)
	out, err := run(t, "inspect", "--config", filepath.Join(dir, "xhtml.json"))
	if err != nil {
		t.Fatalf("inspect error: %v", err)
	}
	for _, want := range []string{"[root]  html", "[self-closing]  meta", `http-equiv="Content-Type"`} {
		if !strings.Contains(out, want) {
			t.Errorf("tree missing %q:\n%s", want, out)
		}
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version", "--short")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != version {
		t.Errorf("version = %q, want %q", out, version)
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{5 << 20, "5.0 MB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.in); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
