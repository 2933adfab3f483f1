package services

import (
	"testing"

	"blogapi/internal/apperr"
)

func TestSignUpRejectsDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.auth.SignUp(SignUpRequest{Username: "alice", Email: "a@example.com", Password: "pw"}); err != nil {
		t.Fatalf("first signup: %v", err)
	}

	_, err := env.auth.SignUp(SignUpRequest{Username: "alice2", Email: "a@example.com", Password: "pw"})
	if apperr.KindOf(err) != apperr.KindInvalidArgument {
		t.Errorf("got %v, want InvalidArgument", err)
	}
}

func TestSignInReturnsIdentityProjection(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.auth.SignUp(SignUpRequest{Username: "alice", Email: "a@example.com", Password: "pw"}); err != nil {
		t.Fatalf("signup: %v", err)
	}

	identity, err := env.auth.SignIn(SignInRequest{Email: "a@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("signin: %v", err)
	}
	if identity.Name != "alice" || identity.Email != "a@example.com" || identity.ID == 0 {
		t.Errorf("got %+v", identity)
	}
}

// Wrong password and unknown email must be indistinguishable to the caller.
func TestSignInFailureIsGeneric(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.auth.SignUp(SignUpRequest{Username: "alice", Email: "a@example.com", Password: "pw"}); err != nil {
		t.Fatalf("signup: %v", err)
	}

	_, wrongPw := env.auth.SignIn(SignInRequest{Email: "a@example.com", Password: "nope"})
	_, unknown := env.auth.SignIn(SignInRequest{Email: "ghost@example.com", Password: "pw"})

	if wrongPw == nil || unknown == nil {
		t.Fatal("expected both signins to fail")
	}
	if wrongPw.Error() != unknown.Error() {
		t.Errorf("failure messages differ: %q vs %q", wrongPw.Error(), unknown.Error())
	}
	if apperr.KindOf(wrongPw) != apperr.KindInvalidArgument || apperr.KindOf(unknown) != apperr.KindInvalidArgument {
		t.Error("both failures should be InvalidArgument")
	}
}

func TestUsernamesByIDsSkipsUnknown(t *testing.T) {
	env := newTestEnv(t)
	env.user(t, "alice", "a@example.com")
	env.user(t, "bob", "b@example.com")

	names, err := env.auth.UsernamesByIDs([]uint{1, 2, 99})
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if len(names) != 2 || names[0] != "alice" || names[1] != "bob" {
		t.Errorf("got %v, want [alice bob]", names)
	}
}
