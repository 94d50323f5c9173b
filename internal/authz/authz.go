// Package authz holds the single role/action policy table. Every
// server action asks this package before touching the store, so the
// allow-lists live in one place instead of drifting across handlers.
package authz

type Role string
type Action string

const (
	RoleMaster    Role = "master"
	RoleLawyer    Role = "lawyer"
	RoleSecretary Role = "secretary"
)

const (
	ActionClientCreate Action = "client.create"
	ActionClientUpdate Action = "client.update"
	ActionClientDelete Action = "client.delete"
	ActionClientView   Action = "client.view"

	ActionProcessCreate         Action = "process.create"
	ActionProcessUpdate         Action = "process.update"
	ActionProcessDelete         Action = "process.delete"
	ActionProcessView           Action = "process.view"
	ActionProcessChatPost       Action = "process.chat.post"
	ActionProcessDocumentUpload Action = "process.document.upload"
	ActionMovementAppend        Action = "process.movement.append"
	ActionCollaboratorManage    Action = "process.collaborator.manage"

	ActionEventCreate  Action = "event.create"
	ActionEventUpdate  Action = "event.update"
	ActionEventDelete  Action = "event.delete"
	ActionEventConfirm Action = "event.confirm"
	ActionEventView    Action = "event.view"

	ActionFinanceManage Action = "finance.manage"
	ActionFinanceToggle Action = "finance.toggle"
	ActionFinanceView   Action = "finance.view"

	ActionTemplateManage Action = "template.manage"
	ActionTemplateView   Action = "template.view"

	ActionTeamInvite Action = "team.invite"
	ActionTeamView   Action = "team.view"

	ActionOfficeSettings Action = "office.settings"
	ActionOfficeView     Action = "office.view"

	ActionContactManage Action = "contact.manage"
	ActionContactView   Action = "contact.view"

	ActionAIPetition Action = "ai.petition"
	ActionAIStatus   Action = "ai.status"
	ActionAISummary  Action = "ai.summary"
)

// policy maps each non-master role to its allow-list. Masters are
// allowed every action within their office and are not listed here.
// Process-level ACL (owner/collaborator) is enforced separately by the
// process service on top of this table.
var policy = map[Role]map[Action]bool{
	RoleLawyer: {
		ActionClientCreate:          true,
		ActionClientUpdate:          true,
		ActionClientView:            true,
		ActionProcessCreate:         true,
		ActionProcessUpdate:         true,
		ActionProcessView:           true,
		ActionProcessChatPost:       true,
		ActionProcessDocumentUpload: true,
		ActionMovementAppend:        true,
		ActionCollaboratorManage:    true,
		ActionEventCreate:           true,
		ActionEventUpdate:           true,
		ActionEventDelete:           true,
		ActionEventConfirm:          true,
		ActionEventView:             true,
		ActionTemplateView:          true,
		ActionTeamView:              true,
		ActionOfficeView:            true,
		ActionAIPetition:            true,
		ActionAIStatus:              true,
		ActionAISummary:             true,
	},
	RoleSecretary: {
		ActionClientView:    true,
		ActionProcessView:   true,
		ActionEventView:     true,
		ActionEventConfirm:  true,
		ActionFinanceView:   true,
		ActionFinanceToggle: true,
		ActionTemplateView:  true,
		ActionTeamView:      true,
		ActionOfficeView:    true,
		ActionContactView:   true,
	},
}

// Can reports whether the role is allowed to perform the action.
func Can(role Role, action Action) bool {
	if role == RoleMaster {
		return true
	}
	return policy[role][action]
}

// Normalize coerces a stored role string to a known Role, defaulting to
// the least-privileged role for anything unrecognized.
func Normalize(role string) Role {
	switch Role(role) {
	case RoleMaster, RoleLawyer, RoleSecretary:
		return Role(role)
	default:
		return RoleSecretary
	}
}

// Invitable reports whether a role may be assigned through the team
// invite flow. Masters are only created by the signup gate.
func Invitable(role Role) bool {
	return role == RoleLawyer || role == RoleSecretary
}
