package notify

import (
	"bytes"
	"errors"
	"runtime"
	"strings"
	"testing"
)

func TestConsoleSuccess(t *testing.T) {
	var out, errBuf bytes.Buffer
	c := &Console{Out: &out, Err: &errBuf}

	c.Success(SuccessTitle, "done")

	if got := out.String(); got != "done\n" {
		t.Errorf("Expected plain message on stdout, got %q", got)
	}
	if errBuf.Len() != 0 {
		t.Error("Expected nothing on stderr for a success")
	}
}

func TestConsoleFailure(t *testing.T) {
	var out, errBuf bytes.Buffer
	c := &Console{Out: &out, Err: &errBuf}

	c.Failure(ErrorTitle, "it broke")

	if got := errBuf.String(); got != "[ERROR] it broke\n" {
		t.Errorf("Expected [ERROR]-prefixed message on stderr, got %q", got)
	}
	if out.Len() != 0 {
		t.Error("Expected nothing on stdout for a failure")
	}
}

func TestDetectModeNonWindows(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("console detection differs on windows")
	}
	if DetectMode() != ModeConsole {
		t.Error("Expected console mode on non-windows platforms")
	}
}

func TestNewConsole(t *testing.T) {
	if _, ok := New(ModeConsole).(*Console); !ok {
		t.Error("Expected a Console notifier for ModeConsole")
	}
}

func TestMessagesBilingual(t *testing.T) {
	msg := SuccessMessage("/tmp/out.png", 3, 1200, 5100)
	if !strings.Contains(msg, "/tmp/out.png") {
		t.Errorf("Expected output path in success message, got %q", msg)
	}
	if !strings.Contains(msg, "변환이 완료되었습니다") {
		t.Errorf("Expected Korean text in success message, got %q", msg)
	}

	unsupported := UnsupportedMessage(".docx")
	if !strings.Contains(unsupported, ".docx") || !strings.Contains(unsupported, "Supported: .pdf, .mvle") {
		t.Errorf("Unexpected unsupported-type message: %q", unsupported)
	}

	failure := FailureMessage(errors.New("boom"))
	if !strings.Contains(failure, "boom") {
		t.Errorf("Expected cause in failure message, got %q", failure)
	}
}
