package wirecast_test

import (
	"errors"
	"strings"
	"testing"

	wirecast "github.com/lumachat/wirecast"
)

func TestIssues_ErrorSummary(t *testing.T) {
	iss := wirecast.Issues{
		{Path: "/a", Code: wirecast.CodeInvalidType},
		{Path: "/b", Code: wirecast.CodeParseError},
		{Path: "/c", Code: wirecast.CodeInvalidType},
		{Path: "/d", Code: wirecast.CodeInvalidType},
	}
	s := iss.Error()
	if s == "" {
		t.Fatalf("expected non-empty error summary")
	}
	if !strings.Contains(s, "total 4") {
		t.Fatalf("expected truncation note, got %q", s)
	}
}

func TestRequire(t *testing.T) {
	v, err := wirecast.Require("hit", true, "user", "cache")
	if err != nil || v != "hit" {
		t.Fatalf("unexpected: %v, %v", v, err)
	}

	_, err = wirecast.Require("", false, "user", "cache")
	var le *wirecast.LookupError
	if !errors.As(err, &le) {
		t.Fatalf("expected LookupError, got %v", err)
	}
	if le.What != "user" || le.Where != "cache" {
		t.Fatalf("lookup error lost context: %+v", le)
	}
	if !strings.Contains(le.Error(), "user") || !strings.Contains(le.Error(), "cache") {
		t.Fatalf("message must carry what and where: %q", le.Error())
	}
}
