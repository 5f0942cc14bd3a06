package auth

import "testing"

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("user-123", "alice@example.com")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	userID, email, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if userID != "user-123" || email != "alice@example.com" {
		t.Errorf("claims = %q/%q", userID, email)
	}
}

func TestGenerateTokenRequiresUserID(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := GenerateToken("", "alice@example.com"); err == nil {
		t.Fatal("expected error for empty user id")
	}
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := GenerateToken("user-123", "alice@example.com"); err == nil {
		t.Fatal("expected error with no signing secret")
	}
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("user-123", "alice@example.com")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, _, err := ValidateToken(token + "x"); err == nil {
		t.Error("tampered token validated")
	}

	t.Setenv("JWT_SECRET", "different-secret")
	if _, _, err := ValidateToken(token); err == nil {
		t.Error("token signed with another secret validated")
	}
}
