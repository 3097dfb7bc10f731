package registry

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

type fakeFrontend struct {
	id  string
	ran bool
}

func (f *fakeFrontend) ID() string    { return f.id }
func (f *fakeFrontend) Title() string { return "Fake " + f.id }
func (f *fakeFrontend) Run(Session) error {
	f.ran = true
	return nil
}

func TestRegisterCreateList(t *testing.T) {
	Register("test-b", func() Frontend { return &fakeFrontend{id: "test-b"} })
	Register("test-a", func() Frontend { return &fakeFrontend{id: "test-a"} })

	if !Exists("test-a") || !Exists("test-b") {
		t.Fatal("registered front-ends not found")
	}
	if Exists("test-missing") {
		t.Error("Exists() = true for unknown id")
	}

	fe, err := Create("test-a")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if fe.ID() != "test-a" {
		t.Errorf("ID() = %q", fe.ID())
	}
	if err := fe.Run(Session{}); err != nil || !fe.(*fakeFrontend).ran {
		t.Errorf("Run() = %v", err)
	}

	var ids []string
	for _, info := range List() {
		if info.ID == "test-a" || info.ID == "test-b" {
			ids = append(ids, info.ID)
			if info.Title != "Fake "+info.ID {
				t.Errorf("Title = %q", info.Title)
			}
		}
	}
	if len(ids) != 2 || ids[0] != "test-a" || ids[1] != "test-b" {
		t.Errorf("List() order = %v", ids)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("test-nope"); err == nil {
		t.Error("Create() error = nil for unknown id")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", func() Frontend { return &fakeFrontend{id: "test-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("test-dup", func() Frontend { return &fakeFrontend{id: "test-dup"} })
}

// Hosts and their shared packages must build without the native audio
// backend; only the device package may import it.
func TestSessionPackagesDoNotLinkAudioDevice(t *testing.T) {
	dirs := []string{
		".",
		"../core",
		"../config",
		"../games/snake",
		"../platform/audio",
		"../platform/tui",
	}

	for _, dir := range dirs {
		files, err := filepath.Glob(filepath.Join(dir, "*.go"))
		if err != nil {
			t.Fatalf("Glob(%q) error = %v", dir, err)
		}
		if len(files) == 0 {
			t.Fatalf("no Go files in %q", dir)
		}
		for _, file := range files {
			f, err := parser.ParseFile(token.NewFileSet(), file, nil, parser.ImportsOnly)
			if err != nil {
				t.Fatalf("ParseFile(%q) error = %v", file, err)
			}
			for _, imp := range f.Imports {
				path, _ := strconv.Unquote(imp.Path.Value)
				if strings.HasPrefix(path, "github.com/hajimehoshi/oto") || strings.HasSuffix(path, "/audio/device") {
					t.Errorf("%s imports %s", file, path)
				}
			}
		}
	}
}
