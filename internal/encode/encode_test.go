package encode

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "img.png")
	if err := os.WriteFile(path, []byte("hello"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	img, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if img.Path != path {
		t.Errorf("expected path %q, got %q", path, img.Path)
	}
	if img.Base64 != "aGVsbG8=" {
		t.Errorf("expected base64 %q, got %q", "aGVsbG8=", img.Base64)
	}

	// Same bytes, same string
	again, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if again.Base64 != img.Base64 {
		t.Errorf("encoding is not deterministic: %q vs %q", again.Base64, img.Base64)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.png"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestChunks(t *testing.T) {
	tests := []struct {
		name  string
		input string
		n     int
		want  []string
	}{
		{"even split", "ABCDEF", 2, []string{"AB", "CD", "EF"}},
		{"short last chunk", "XYZABCD1234QQQ", 4, []string{"XYZA", "BCD1", "234Q", "QQ"}},
		{"chunk longer than input", "AB", 10, []string{"AB"}},
		{"single chars", "abc", 1, []string{"a", "b", "c"}},
		{"empty input", "", 4, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for c := range Chunks(tt.input, tt.n) {
				got = append(got, c)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Chunks(%q, %d) = %v, want %v", tt.input, tt.n, got, tt.want)
			}
		})
	}
}

// TestChunksCount verifies the ceil(L/N) chunk count and remainder length.
func TestChunksCount(t *testing.T) {
	input := make([]byte, 250)
	for i := range input {
		input[i] = 'a'
	}
	n := 120

	var chunks []string
	for c := range Chunks(string(input), n) {
		chunks = append(chunks, c)
	}

	if len(chunks) != 3 { // ceil(250/120)
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	for i, c := range chunks[:len(chunks)-1] {
		if len(c) != n {
			t.Errorf("chunk %d has length %d, want %d", i, len(c), n)
		}
	}
	if last := chunks[len(chunks)-1]; len(last) != 10 { // 250 - 120*2
		t.Errorf("last chunk has length %d, want 10", len(last))
	}
}

func TestChunksRestartable(t *testing.T) {
	seq := Chunks("ABCDEF", 2)

	// Early exit, then iterate again from the start
	for range seq {
		break
	}

	var got []string
	for c := range seq {
		got = append(got, c)
	}
	if !slices.Equal(got, []string{"AB", "CD", "EF"}) {
		t.Errorf("second iteration = %v, want full sequence", got)
	}
}
