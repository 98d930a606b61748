package toolkit

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate_MissingRequired(t *testing.T) {
	desc := Descriptor{
		Name: "query",
		Fields: []FieldSpec{
			{Name: "sql", Type: TypeString, Required: true},
		},
	}

	_, err := Validate(desc, map[string]any{})
	if err == nil {
		t.Fatal("expected validation error for missing required field")
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if verr.Field != "sql" {
		t.Errorf("expected field sql, got %q", verr.Field)
	}
	if !strings.Contains(err.Error(), "missing required argument") {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestValidate_TypeMismatch(t *testing.T) {
	desc := Descriptor{
		Name: "stop_container",
		Fields: []FieldSpec{
			{Name: "id_or_name", Type: TypeString, Required: true},
			{Name: "timeout_seconds", Type: TypeNumber},
		},
	}

	_, err := Validate(desc, map[string]any{"id_or_name": 42})
	if err == nil || !strings.Contains(err.Error(), "expected string, got number") {
		t.Errorf("expected string mismatch error, got %v", err)
	}

	_, err = Validate(desc, map[string]any{"id_or_name": "db", "timeout_seconds": "10"})
	if err == nil || !strings.Contains(err.Error(), "expected number, got string") {
		t.Errorf("expected number mismatch error, got %v", err)
	}
}

func TestValidate_BooleanMismatch(t *testing.T) {
	desc := Descriptor{
		Name: "list_containers",
		Fields: []FieldSpec{
			{Name: "all", Type: TypeBoolean},
		},
	}

	_, err := Validate(desc, map[string]any{"all": "true"})
	if err == nil || !strings.Contains(err.Error(), "expected boolean") {
		t.Errorf("expected boolean mismatch error, got %v", err)
	}
}

func TestValidate_NumberAcceptsIntegerRuntimeTypes(t *testing.T) {
	desc := Descriptor{
		Name: "git_log",
		Fields: []FieldSpec{
			{Name: "max_count", Type: TypeNumber},
		},
	}

	args, err := Validate(desc, map[string]any{"max_count": 5})
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if got := args.GetInt("max_count", 0); got != 5 {
		t.Errorf("expected 5, got %d", got)
	}
}

func TestValidate_DefaultSubstituted(t *testing.T) {
	desc := Descriptor{
		Name: "stop_container",
		Fields: []FieldSpec{
			{Name: "id_or_name", Type: TypeString, Required: true},
			{Name: "timeout_seconds", Type: TypeNumber, Default: 10},
		},
	}

	args, err := Validate(desc, map[string]any{"id_or_name": "db"})
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !args.Has("timeout_seconds") {
		t.Fatal("expected default to be substituted")
	}
	if got := args.GetInt("timeout_seconds", 0); got != 10 {
		t.Errorf("expected default 10, got %d", got)
	}
}

func TestValidate_OptionalWithoutDefaultOmitted(t *testing.T) {
	desc := Descriptor{
		Name: "git_push",
		Fields: []FieldSpec{
			{Name: "remote", Type: TypeString, Default: "origin"},
			{Name: "branch", Type: TypeString},
		},
	}

	args, err := Validate(desc, map[string]any{})
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if args.GetString("remote", "") != "origin" {
		t.Errorf("expected remote default origin, got %q", args.GetString("remote", ""))
	}
	if args.Has("branch") {
		t.Error("expected branch to be omitted when absent with no default")
	}
}

func TestValidate_EnumMembership(t *testing.T) {
	desc := Descriptor{
		Name: "git_branch",
		Fields: []FieldSpec{
			{Name: "action", Type: TypeEnum, Required: true, Enum: []string{"list", "create", "delete"}},
		},
	}

	args, err := Validate(desc, map[string]any{"action": "create"})
	if err != nil {
		t.Fatalf("Validate failed for valid member: %v", err)
	}
	if args.GetString("action", "") != "create" {
		t.Errorf("expected action create, got %q", args.GetString("action", ""))
	}

	_, err = Validate(desc, map[string]any{"action": "rename"})
	if err == nil {
		t.Fatal("expected validation error for value outside enum set")
	}
	if !strings.Contains(err.Error(), "must be one of [list, create, delete]") {
		t.Errorf("unexpected message: %s", err.Error())
	}

	_, err = Validate(desc, map[string]any{"action": 3})
	if err == nil || !strings.Contains(err.Error(), "expected string") {
		t.Errorf("expected string mismatch for non-string enum value, got %v", err)
	}
}

func TestValidate_ExtraFieldsIgnored(t *testing.T) {
	desc := Descriptor{
		Name: "get",
		Fields: []FieldSpec{
			{Name: "key", Type: TypeString, Required: true},
		},
	}

	args, err := Validate(desc, map[string]any{"key": "alpha", "ttl": 30, "trace": true})
	if err != nil {
		t.Fatalf("extra fields must not fail validation: %v", err)
	}
	if args.Has("ttl") || args.Has("trace") {
		t.Error("extra fields must not leak into validated args")
	}
	if args.GetString("key", "") != "alpha" {
		t.Errorf("expected key alpha, got %q", args.GetString("key", ""))
	}
}

func TestValidate_FieldsCheckedInDeclarationOrder(t *testing.T) {
	desc := Descriptor{
		Name: "set",
		Fields: []FieldSpec{
			{Name: "key", Type: TypeString, Required: true},
			{Name: "value", Type: TypeString, Required: true},
		},
	}

	// Both fields are bad; the first declared field must be reported.
	_, err := Validate(desc, map[string]any{"value": 7})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Field != "key" {
		t.Errorf("expected first declared field key, got %q", verr.Field)
	}
}
