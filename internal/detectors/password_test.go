package detectors

import "testing"

func TestGenericPassword_QuotedValue(t *testing.T) {
	if got := GenericPassword.Matches(`password = "hunter2!"`); len(got) != 1 {
		t.Fatalf("expected 1 match, got %d", len(got))
	}
}

func TestGenericPassword_BelowMinLength(t *testing.T) {
	if got := GenericPassword.Matches(`pwd="abc"`); len(got) != 0 {
		t.Fatalf("3-char value should not match: %v", got)
	}
}

func TestGenericPassword_UnquotedValueIgnored(t *testing.T) {
	if got := GenericPassword.Matches(`password = hunter2!`); len(got) != 0 {
		t.Fatalf("unquoted value should not match: %v", got)
	}
}

func TestDatabasePassword(t *testing.T) {
	if got := DatabasePassword.Matches(`db_password = "s3cr3t"`); len(got) != 1 {
		t.Fatalf("expected 1 match, got %d", len(got))
	}
	if got := DatabasePassword.Matches(`database_password: 'prod-pass-1'`); len(got) != 1 {
		t.Fatalf("expected 1 match for database_password, got %d", len(got))
	}
}
