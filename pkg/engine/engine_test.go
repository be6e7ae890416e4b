package engine

import (
	"strings"
	"testing"
)

func TestEvaluateEmptyString(t *testing.T) {
	eng := NewEngine()

	scene, evalErrs, err := eng.Evaluate("")
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if scene == nil {
		t.Fatal("expected non-nil scene")
	}
	if scene.SolidCount() != 0 {
		t.Errorf("expected empty scene, got %d solids", scene.SolidCount())
	}
}

func TestEvaluateWhitespaceOnly(t *testing.T) {
	eng := NewEngine()

	scene, evalErrs, err := eng.Evaluate("   \n\t  \n  ")
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if scene == nil || scene.SolidCount() != 0 {
		t.Error("expected empty scene")
	}
}

func TestEvaluateArithmetic(t *testing.T) {
	eng := NewEngine()

	// Plain Lisp without DSL forms evaluates to an empty scene.
	scene, evalErrs, err := eng.Evaluate("(+ 1 2)")
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if scene.SolidCount() != 0 {
		t.Errorf("expected empty scene, got %d solids", scene.SolidCount())
	}
}

func TestEvaluateParseError(t *testing.T) {
	eng := NewEngine()

	scene, evalErrs, err := eng.Evaluate("(defsolid \"a\" (box 1 1")
	if err != nil {
		t.Fatalf("parse errors must be eval errors, not fatal: %v", err)
	}
	if scene != nil {
		t.Error("expected nil scene on parse failure")
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected at least one eval error")
	}
}

func TestEvaluateRuntimeError(t *testing.T) {
	eng := NewEngine()

	_, evalErrs, err := eng.Evaluate(`(box 1 2)`)
	if err != nil {
		t.Fatalf("builtin failures must be eval errors, not fatal: %v", err)
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected an eval error from box with 2 dimensions")
	}
	found := false
	for _, e := range evalErrs {
		if strings.Contains(e.Message, "box") {
			found = true
		}
	}
	if !found {
		t.Errorf("error should mention the failing builtin: %v", evalErrs)
	}
}

func TestEvalErrorFormatting(t *testing.T) {
	withLine := EvalError{Line: 3, Message: "boom"}
	if got := withLine.Error(); got != "line 3: boom" {
		t.Errorf("Error() = %q", got)
	}
	without := EvalError{Message: "boom"}
	if got := without.Error(); got != "boom" {
		t.Errorf("Error() = %q", got)
	}
}

func TestParseZygomysErrorLineExtraction(t *testing.T) {
	errs := parseZygomysError(errFromString("Error on line 7: unexpected token"))
	if len(errs) != 1 || errs[0].Line != 7 {
		t.Fatalf("parsed %v", errs)
	}
	if errs[0].Message != "unexpected token" {
		t.Errorf("message = %q", errs[0].Message)
	}

	errs = parseZygomysError(errFromString("something opaque"))
	if len(errs) != 1 || errs[0].Line != 0 || errs[0].Message != "something opaque" {
		t.Fatalf("fallback parsed %v", errs)
	}
}

// errFromString builds an error with a fixed message.
type errFromString string

func (e errFromString) Error() string { return string(e) }
