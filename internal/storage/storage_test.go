package storage

import (
	"strings"
	"testing"
)

func TestProfilePhotoPath(t *testing.T) {
	p := ProfilePhotoPath("uid-1", "minha foto.png")
	if !strings.HasPrefix(p, "profiles/uid-1/") {
		t.Fatalf("unexpected prefix: %s", p)
	}
	if !strings.HasSuffix(p, "-minha_foto.png") {
		t.Fatalf("filename not sanitized: %s", p)
	}
	if p == ProfilePhotoPath("uid-1", "minha foto.png") {
		t.Fatal("paths must be unique per upload")
	}
}

func TestProcessDocumentPathFlattensSeparators(t *testing.T) {
	p := ProcessDocumentPath("p1", "../../etc/passwd")
	if !strings.HasPrefix(p, "processes/p1/documents/") {
		t.Fatalf("unexpected prefix: %s", p)
	}
	if strings.Contains(strings.TrimPrefix(p, "processes/p1/documents/"), "/") {
		t.Fatalf("path separators leaked into object name: %s", p)
	}
}

func TestSanitizeFilenameEmpty(t *testing.T) {
	if got := sanitizeFilename(""); got != "file" {
		t.Fatalf("sanitizeFilename(\"\") = %q", got)
	}
}
