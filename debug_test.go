package kinema

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

// captureLog installs a text logger writing to the returned buffer for the
// rest of the test.
func captureLog(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

// ---- Debug mode tests ------------------------------------------------------

func TestDebugMode_DisposedNodePanics(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	parent := NewNode("parent")
	s.Root().AddChild(parent)

	child := NewSquare("child", 1)
	child.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on AddChild with disposed node, got none")
		}
		msg := fmt.Sprint(r)
		if !strings.Contains(msg, "disposed") {
			t.Errorf("panic message should mention 'disposed', got: %s", msg)
		}
	}()

	parent.AddChild(child)
}

func TestDebugMode_DisposedParentPanics(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	parent := NewNode("parent")
	parent.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on AddChild to disposed parent, got none")
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, "disposed") {
			t.Errorf("panic message should mention 'disposed', got: %s", msg)
		}
	}()

	parent.AddChild(NewSquare("child", 1))
}

func TestReleaseMode_DisposedNodeNoPanic(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(false)

	child := NewSquare("child", 1)
	child.Dispose()
	s.Root().AddChild(child)
	if child.Parent != s.Root() {
		t.Error("release mode should not check disposal")
	}
}

func TestDebugMode_TreeDepthWarning(t *testing.T) {
	buf := captureLog(t, slog.LevelWarn)
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	// Build a chain deeper than debugMaxTreeDepth.
	current := s.Root()
	for i := 0; i < debugMaxTreeDepth+5; i++ {
		child := NewNode(fmt.Sprintf("depth_%d", i))
		current.AddChild(child)
		current = child
	}

	if !strings.Contains(buf.String(), "tree too deep") {
		t.Errorf("expected tree depth warning, got: %q", buf.String())
	}
}

func TestDebugMode_ChildCountWarning(t *testing.T) {
	buf := captureLog(t, slog.LevelWarn)
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	parent := NewNode("many_children")
	s.Root().AddChild(parent)
	for i := 0; i < debugMaxChildCount+1; i++ {
		parent.AddChild(NewNode(fmt.Sprintf("c_%d", i)))
	}

	if !strings.Contains(buf.String(), "too many children") {
		t.Errorf("expected child count warning, got: %q", buf.String())
	}
}

func TestDebugMode_LogsAnimationLifecycle(t *testing.T) {
	buf := captureLog(t, slog.LevelInfo)
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	cfg := DefaultAnimConfig()
	cfg.Name = "intro"
	s.Play(Create(NewSquare("sq", 1), cfg))
	s.FinishAll()

	out := buf.String()
	if !strings.Contains(out, "animation began") || !strings.Contains(out, "animation finished") {
		t.Errorf("expected lifecycle logs, got: %q", out)
	}
	if !strings.Contains(out, "name=intro") {
		t.Errorf("expected animation name in log, got: %q", out)
	}
}

func TestReleaseMode_NoLifecycleLogs(t *testing.T) {
	buf := captureLog(t, slog.LevelInfo)
	s := NewScene()
	s.SetDebugMode(false)
	s.Play(Create(NewSquare("sq", 1), DefaultAnimConfig()))
	s.FinishAll()
	if buf.Len() != 0 {
		t.Errorf("expected no logs outside debug mode, got: %q", buf.String())
	}
}
