package auth

import (
	"os"
	"testing"
)

func TestJWTFlow(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-12345")

	in := Claims{
		UserID:     "user-1",
		Username:   "kasir1",
		BranchID:   "branch-1",
		BranchName: "Warung Pusat",
		Role:       "CASHIER",
	}

	token, err := GenerateToken(in)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	out, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("Failed to validate token: %v", err)
	}

	if out != in {
		t.Fatalf("Expected claims %+v, got %+v", in, out)
	}
}

func TestGenerateToken_EmptyUserID(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-12345")

	if _, err := GenerateToken(Claims{}); err == nil {
		t.Fatal("expected error for empty userID")
	}
}
