package cmd

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func Test_makeDocs(t *testing.T) {
	dir, err := ioutil.TempDir("", "kcounter-docs")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	if err := makeDocs(dir); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"kcounter.md", "kcounter_count.md"} {
		contents, err := ioutil.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("makeDocs() didn't write %s: %v", name, err)
		}
		if !strings.HasPrefix(string(contents), "---\nlayout: default\n") {
			t.Errorf("makeDocs() wrote %s without a front matter header", name)
		}
	}

	if _, err := os.Stat(filepath.Join(dir, "kcounter_docs.md")); err == nil {
		t.Errorf("makeDocs() documented the hidden docs command")
	}
}

func Test_filePrepender(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{
			"root page",
			"docs/kcounter.md",
			"---\nlayout: default\ntitle: kcounter\nnav_order: 0\nhas_children: true\npermalink: /\n---\n",
		},
		{
			"child page",
			"docs/kcounter_count.md",
			"---\nlayout: default\ntitle: count\nparent: kcounter\nnav_order: 0\n---\n",
		},
		{
			"unknown page",
			"docs/kcounter_completion.md",
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := filePrepender(tt.filename); got != tt.want {
				t.Errorf("filePrepender() = %q, want %q", got, tt.want)
			}
		})
	}
}

func Test_linkHandler(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"root", "kcounter.md", "/"},
		{"child", "kcounter_count.md", "kcounter_count"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := linkHandler(tt.filename); got != tt.want {
				t.Errorf("linkHandler() = %v, want %v", got, tt.want)
			}
		})
	}
}
