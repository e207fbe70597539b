package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--today", "2024-03-10"}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestMetricsCmd(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "metrics")
	if err != nil {
		t.Fatalf("metrics failed: %v", err)
	}
	if !strings.Contains(out, "إجمالي الموظفين") {
		t.Fatalf("expected total employees card, got:\n%s", out)
	}
	if !strings.Contains(out, "4.5") {
		t.Fatalf("expected average score of active employees, got:\n%s", out)
	}
}

func TestFeedCmd(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "feed")
	if err != nil {
		t.Fatalf("feed failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) == 0 || !strings.HasPrefix(lines[0], "2024-03-22") {
		t.Fatalf("expected newest entry first, got:\n%s", out)
	}
}

func TestDirectoryCmd(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "directory", "--search", "RECRUIT")
	if err != nil {
		t.Fatalf("directory failed: %v", err)
	}
	if !strings.Contains(out, "Lina Al-Mutairi") || !strings.Contains(out, "1/5") {
		t.Fatalf("unexpected directory output:\n%s", out)
	}

	if _, _, err := execute(t, "directory", "--status", "Retired"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestLeaveCmd(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "leave", "--status", "Pending")
	if err != nil {
		t.Fatalf("leave failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "leave-002") {
		t.Fatalf("expected two pending requests newest first, got:\n%s", out)
	}
}

func TestChecklistCmd(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "checklist")
	if err != nil {
		t.Fatalf("checklist failed: %v", err)
	}
	onboarding := strings.Index(out, "[Onboarding]")
	engagement := strings.Index(out, "[Engagement]")
	if onboarding < 0 || engagement < 0 || onboarding > engagement {
		t.Fatalf("expected fixed category order, got:\n%s", out)
	}
}

func TestWorkflowsCmd(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "workflows", "--search", "تجربة")
	if err != nil {
		t.Fatalf("workflows failed: %v", err)
	}
	if !strings.Contains(out, "wf-002") || strings.Contains(out, "wf-001") {
		t.Fatalf("unexpected workflows output:\n%s", out)
	}
}

func TestTemplatesCmd(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "templates")
	if err != nil {
		t.Fatalf("templates failed: %v", err)
	}
	if !strings.Contains(out, "offer-letter") || !strings.Contains(out, "candidateName,position") {
		t.Fatalf("unexpected templates output:\n%s", out)
	}
}

func TestRenderCmd(t *testing.T) {
	orig := clipboardWriteAll
	defer func() { clipboardWriteAll = orig }()

	var copied string
	clipboardWriteAll = func(text string) error {
		copied = text
		return nil
	}

	out, errOut, err := execute(t, "render", "exit-clearance", "--set", "employeeName=Huda", "--copy")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(out, "الموظف/ة Huda") {
		t.Fatalf("expected substituted name, got:\n%s", out)
	}
	if !strings.Contains(out, "{الإدارة}") {
		t.Fatalf("expected unfilled label placeholder, got:\n%s", out)
	}
	if copied != strings.TrimSuffix(out, "\n") {
		t.Fatalf("expected clipboard to receive the rendered text")
	}
	if !strings.Contains(errOut, "تم النسخ") {
		t.Fatalf("expected copied indicator, got %q", errOut)
	}

	clipboardWriteAll = func(string) error { return errors.New("no clipboard") }
	if _, _, err := execute(t, "render", "exit-clearance", "--copy"); err != nil {
		t.Fatalf("clipboard failures must not fail the command: %v", err)
	}

	if _, _, err := execute(t, "render", "missing-template"); err == nil {
		t.Fatal("expected error for unknown template")
	}
}
