package staff

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"newbie", RoleNewbie, false},
		{"Mentor", RoleMentor, false},
		{" ADMIN ", RoleAdmin, false},
		{"owner", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseRole(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseRole(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCanWriteProgress(t *testing.T) {
	want := map[Role]bool{
		RoleNewbie: false,
		RoleMentor: true,
		RoleAdmin:  true,
		Role(""):   false,
		Role("x"):  false,
	}
	for r, w := range want {
		if got := r.CanWriteProgress(); got != w {
			t.Errorf("%q.CanWriteProgress() = %v, want %v", r, got, w)
		}
	}
}

func TestCanManageStaff(t *testing.T) {
	if RoleMentor.CanManageStaff() || RoleNewbie.CanManageStaff() {
		t.Error("only admins manage staff")
	}
	if !RoleAdmin.CanManageStaff() {
		t.Error("admin should manage staff")
	}
}
