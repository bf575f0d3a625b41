package domain

import "testing"

func TestParseRole(t *testing.T) {
	cases := []struct {
		input   string
		want    Role
		wantErr bool
	}{
		{"ADMIN", RoleAdmin, false},
		{"EDITOR", RoleEditor, false},
		{"admin", "", true},
		{"SUPERUSER", "", true},
		{"", "", true},
	}

	for _, tc := range cases {
		got, err := ParseRole(tc.input)
		if tc.wantErr {
			if err != ErrInvalidRole {
				t.Errorf("ParseRole(%q): expected ErrInvalidRole, got %v", tc.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRole(%q) returned error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestRoleAtLeast(t *testing.T) {
	cases := []struct {
		role Role
		min  Role
		want bool
	}{
		{RoleAdmin, RoleAdmin, true},
		{RoleAdmin, RoleEditor, true},
		{RoleEditor, RoleEditor, true},
		{RoleEditor, RoleAdmin, false},
		{Role("GUEST"), RoleEditor, false},
		{Role(""), RoleEditor, false},
	}

	for _, tc := range cases {
		if got := tc.role.AtLeast(tc.min); got != tc.want {
			t.Errorf("%q.AtLeast(%q) = %v, want %v", tc.role, tc.min, got, tc.want)
		}
	}
}

func TestIdentityOf(t *testing.T) {
	u := &User{
		ID:           "u1",
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		Role:         RoleAdmin,
	}

	id := IdentityOf(u)
	if id.ID != "u1" || id.Name != "Alice" || id.Email != "alice@example.com" || id.Role != RoleAdmin {
		t.Fatalf("unexpected identity: %+v", id)
	}
}
