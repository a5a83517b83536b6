package IO

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ND-CSE-40657/hw2/model2"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pairs.zh-en")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadParallel(t *testing.T) {
	path := writeTemp(t, "我 不 喜 欢 沙 子\ti do n't like sand\n子 沙\tsand\n")

	data, err := ReadParallel(path)
	if err != nil {
		t.Fatalf("ReadParallel: %v", err)
	}
	if len(data) != 2 {
		t.Fatalf("got %d pairs, want 2", len(data))
	}

	want := []string{"我", "不", "喜", "欢", "沙", "子", model2.EOS}
	if strings.Join(data[0].FWords, " ") != strings.Join(want, " ") {
		t.Fatalf("FWords = %v, want %v", data[0].FWords, want)
	}
	if got := data[0].EWords[len(data[0].EWords)-1]; got != model2.EOS {
		t.Fatalf("EWords not <EOS>-terminated: %v", data[0].EWords)
	}
	if len(data[1].EWords) != 2 { // "sand" + <EOS>
		t.Fatalf("EWords = %v", data[1].EWords)
	}
}

func TestReadParallelMissingTabFailsWholeLoad(t *testing.T) {
	path := writeTemp(t, "我 子\tsand\nno tab on this line\n")
	if _, err := ReadParallel(path); err == nil {
		t.Fatal("expected error for a line without a tab")
	}
}

func TestReadParallelExtraTabFailsWholeLoad(t *testing.T) {
	path := writeTemp(t, "我\tsand\textra\n")
	if _, err := ReadParallel(path); err == nil {
		t.Fatal("expected error for a line with two tabs")
	}
}

func TestWriteTranslations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.out")
	err := WriteTranslations(path, [][]string{
		{"i", "do", "n't", "like", "sand"},
		{},
		{"sand"},
	})
	if err != nil {
		t.Fatalf("WriteTranslations: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "i do n't like sand\n\nsand\n" {
		t.Fatalf("unexpected output: %q", string(raw))
	}
}
