package authz

import "testing"

func TestCan(t *testing.T) {
	cases := []struct {
		name   string
		role   Role
		action Action
		allow  bool
	}{
		{name: "master invites", role: RoleMaster, action: ActionTeamInvite, allow: true},
		{name: "master finance", role: RoleMaster, action: ActionFinanceManage, allow: true},
		{name: "master templates", role: RoleMaster, action: ActionTemplateManage, allow: true},

		{name: "lawyer creates client", role: RoleLawyer, action: ActionClientCreate, allow: true},
		{name: "lawyer creates process", role: RoleLawyer, action: ActionProcessCreate, allow: true},
		{name: "lawyer posts chat", role: RoleLawyer, action: ActionProcessChatPost, allow: true},
		{name: "lawyer drafts petition", role: RoleLawyer, action: ActionAIPetition, allow: true},
		{name: "lawyer deletes client", role: RoleLawyer, action: ActionClientDelete, allow: false},
		{name: "lawyer manages finance", role: RoleLawyer, action: ActionFinanceManage, allow: false},
		{name: "lawyer views finance", role: RoleLawyer, action: ActionFinanceView, allow: false},
		{name: "lawyer invites", role: RoleLawyer, action: ActionTeamInvite, allow: false},
		{name: "lawyer manages templates", role: RoleLawyer, action: ActionTemplateManage, allow: false},
		{name: "lawyer edits settings", role: RoleLawyer, action: ActionOfficeSettings, allow: false},

		{name: "secretary views clients", role: RoleSecretary, action: ActionClientView, allow: true},
		{name: "secretary confirms event", role: RoleSecretary, action: ActionEventConfirm, allow: true},
		{name: "secretary toggles finance", role: RoleSecretary, action: ActionFinanceToggle, allow: true},
		{name: "secretary creates client", role: RoleSecretary, action: ActionClientCreate, allow: false},
		{name: "secretary creates process", role: RoleSecretary, action: ActionProcessCreate, allow: false},
		{name: "secretary posts chat", role: RoleSecretary, action: ActionProcessChatPost, allow: false},
		{name: "secretary manages templates", role: RoleSecretary, action: ActionTemplateManage, allow: false},
		{name: "secretary drafts petition", role: RoleSecretary, action: ActionAIPetition, allow: false},
		{name: "secretary creates event", role: RoleSecretary, action: ActionEventCreate, allow: false},

		{name: "unknown role", role: Role("intern"), action: ActionClientView, allow: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Can(tc.role, tc.action); got != tc.allow {
				t.Fatalf("Can(%q, %q) = %v, want %v", tc.role, tc.action, got, tc.allow)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("master"); got != RoleMaster {
		t.Fatalf("Normalize(master) = %q", got)
	}
	if got := Normalize("paralegal"); got != RoleSecretary {
		t.Fatalf("Normalize(paralegal) = %q, want secretary fallback", got)
	}
}

func TestInvitable(t *testing.T) {
	if Invitable(RoleMaster) {
		t.Fatal("master must not be invitable")
	}
	if !Invitable(RoleLawyer) || !Invitable(RoleSecretary) {
		t.Fatal("lawyer and secretary must be invitable")
	}
}
