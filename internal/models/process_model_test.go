package models

import "testing"

func TestNormalizeProcessStatus(t *testing.T) {
	cases := []struct {
		in   string
		want ProcessStatus
	}{
		{"a_distribuir", StatusADistribuir},
		{"em_andamento", StatusEmAndamento},
		{"em_recurso", StatusEmRecurso},
		{"execucao", StatusExecucao},
		{"arquivado_provisorio", StatusArquivadoProvisorio},
		{"arquivado_definitivo", StatusArquivadoDefinitivo},
		// legacy values
		{"active", StatusEmAndamento},
		{"pending", StatusADistribuir},
		{"archived", StatusArquivadoDefinitivo},
		// unknown values fall back
		{"", StatusADistribuir},
		{"garbage", StatusADistribuir},
	}
	for _, tc := range cases {
		if got := NormalizeProcessStatus(tc.in); got != tc.want {
			t.Errorf("NormalizeProcessStatus(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestHasCollaborator(t *testing.T) {
	p := &Process{CollaboratorIDs: []string{"a", "b"}}
	if !p.HasCollaborator("a") {
		t.Error("expected a to be a collaborator")
	}
	if p.HasCollaborator("c") {
		t.Error("did not expect c to be a collaborator")
	}
	empty := &Process{}
	if empty.HasCollaborator("a") {
		t.Error("empty ACL should match nobody")
	}
}
