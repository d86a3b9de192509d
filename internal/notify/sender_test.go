package notify

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPlatform(t *testing.T) {
	t.Parallel()
	platform := Platform()

	if platform == "" {
		t.Error("Platform() returned empty string")
	}
}

func TestNewSender(t *testing.T) {
	t.Parallel()
	sender := NewSender()

	if sender == nil {
		t.Fatal("NewSender() returned nil")
	}

	// Availability methods must not panic regardless of host
	_ = sender.VisualAvailable()
	_ = sender.SoundAvailable()
}

func TestNoopSender(t *testing.T) {
	t.Parallel()
	sender := &noopSender{}

	tests := map[string]struct {
		fn       func() interface{}
		expected interface{}
	}{
		"VisualAvailable returns false": {
			fn:       func() interface{} { return sender.VisualAvailable() },
			expected: false,
		},
		"SoundAvailable returns false": {
			fn:       func() interface{} { return sender.SoundAvailable() },
			expected: false,
		},
		"SendVisual returns nil": {
			fn: func() interface{} {
				return sender.SendVisual(NewNotification("test", "test"))
			},
			expected: nil,
		},
		"SendSound returns nil": {
			fn:       func() interface{} { return sender.SendSound("") },
			expected: nil,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			result := tt.fn()
			if result != tt.expected {
				t.Errorf("got %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestValidateSoundFile(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()
	validFile := filepath.Join(tmpDir, "test.wav")
	if err := os.WriteFile(validFile, []byte("test"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	testDir := filepath.Join(tmpDir, "testdir")
	if err := os.Mkdir(testDir, 0755); err != nil {
		t.Fatalf("failed to create test directory: %v", err)
	}

	unsupportedFile := filepath.Join(tmpDir, "test.txt")
	if err := os.WriteFile(unsupportedFile, []byte("test"), 0644); err != nil {
		t.Fatalf("failed to create unsupported test file: %v", err)
	}

	tests := map[string]struct {
		soundFile string
		expected  string
	}{
		"empty string returns empty": {
			soundFile: "",
			expected:  "",
		},
		"valid wav file returns path": {
			soundFile: validFile,
			expected:  validFile,
		},
		"non-existent file returns empty": {
			soundFile: "/path/to/nonexistent/file.wav",
			expected:  "",
		},
		"directory returns empty": {
			soundFile: testDir,
			expected:  "",
		},
		"unsupported extension returns empty": {
			soundFile: unsupportedFile,
			expected:  "",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			result := ValidateSoundFile(tt.soundFile)
			if result != tt.expected {
				t.Errorf("ValidateSoundFile(%q) = %q, expected %q", tt.soundFile, result, tt.expected)
			}
		})
	}
}

func TestValidateSoundFile_CaseInsensitiveExtensions(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()

	for _, ext := range []string{".WAV", ".Mp3", ".AIFF"} {
		testFile := filepath.Join(tmpDir, "test"+ext)
		if err := os.WriteFile(testFile, []byte("test"), 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}
		if ValidateSoundFile(testFile) == "" {
			t.Errorf("extension %q should validate case-insensitively", ext)
		}
	}
}

func TestToolAvailable(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		tool     string
		expected bool
	}{
		"should find common tool": {
			// "go" is available in any Go test environment
			tool:     "go",
			expected: true,
		},
		"should not find nonexistent tool": {
			tool:     "nonexistent_tool_12345",
			expected: false,
		},
		"empty string returns false": {
			tool:     "",
			expected: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			result := toolAvailable(tt.tool)
			if result != tt.expected {
				t.Errorf("toolAvailable(%q) = %v, expected %v", tt.tool, result, tt.expected)
			}
		})
	}
}
