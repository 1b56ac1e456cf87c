package app

import (
	"testing"

	"github.com/dwikikusuma/dohsarpay/internal/auth/domain"
)

func TestLogin(t *testing.T) {
	t.Run("admin pair -> admin identity", func(t *testing.T) {
		svc := NewService()
		sess, err := svc.Login("admin", "admin123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sess.Identity.Role != domain.RoleAdmin {
			t.Fatalf("expected admin role, got %q", sess.Identity.Role)
		}
		if sess.Token == "" {
			t.Fatal("expected a session token")
		}
	})

	t.Run("customer pair -> customer identity", func(t *testing.T) {
		svc := NewService()
		sess, err := svc.Login("user", "1234")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sess.Identity.Role != domain.RoleCustomer {
			t.Fatalf("expected customer role, got %q", sess.Identity.Role)
		}
	})

	t.Run("wrong password -> ErrBadCredentials", func(t *testing.T) {
		svc := NewService()
		if _, err := svc.Login("admin", "nope"); err != ErrBadCredentials {
			t.Fatalf("expected ErrBadCredentials, got %v", err)
		}
	})

	t.Run("unknown user -> ErrBadCredentials", func(t *testing.T) {
		svc := NewService()
		if _, err := svc.Login("ghost", "1234"); err != ErrBadCredentials {
			t.Fatalf("expected ErrBadCredentials, got %v", err)
		}
	})

	t.Run("failed login leaves existing session live", func(t *testing.T) {
		svc := NewService()
		sess, err := svc.Login("user", "1234")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := svc.Login("user", "wrong"); err != ErrBadCredentials {
			t.Fatalf("expected ErrBadCredentials, got %v", err)
		}

		if _, ok := svc.Identify(sess.Token); !ok {
			t.Fatal("existing session was dropped by a failed login")
		}
	})
}

func TestIdentifyAndLogout(t *testing.T) {
	svc := NewService()

	if _, ok := svc.Identify(""); ok {
		t.Fatal("empty token must be anonymous")
	}
	if _, ok := svc.Identify("unknown"); ok {
		t.Fatal("unknown token must be anonymous")
	}

	sess, err := svc.Login("admin", "admin123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	id, ok := svc.Identify(sess.Token)
	if !ok || !id.IsAdmin() {
		t.Fatalf("expected live admin identity, got %+v ok=%v", id, ok)
	}

	svc.Logout(sess.Token)
	if _, ok := svc.Identify(sess.Token); ok {
		t.Fatal("session survived logout")
	}

	// Logout of an unknown token is a no-op.
	svc.Logout("unknown")
}
