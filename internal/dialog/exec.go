package dialog

import (
	"context"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"skillhub/internal/logging"
	"skillhub/internal/platform"
)

const dialogTitle = "Select skills folder"

// Runner runs a command and returns its standard output.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// ExecPicker opens the operating system's folder dialog in a child process:
// PowerShell's FolderBrowserDialog on Windows, AppleScript's choose folder on
// macOS and zenity elsewhere.
type ExecPicker struct {
	GOOS string
	Run  Runner
}

// NewExecPicker returns a picker for the running platform.
func NewExecPicker() *ExecPicker {
	return &ExecPicker{GOOS: runtime.GOOS, Run: runCommand}
}

func (p *ExecPicker) command() (string, []string) {
	switch p.GOOS {
	case platform.Windows:
		script := "Add-Type -AssemblyName System.Windows.Forms; " +
			"$dialog = New-Object System.Windows.Forms.FolderBrowserDialog; " +
			"$dialog.Description = '" + dialogTitle + "'; " +
			"if ($dialog.ShowDialog() -eq 'OK') { $dialog.SelectedPath }"
		return "powershell", []string{"-NoProfile", "-Command", script}
	case platform.MacOS:
		script := `POSIX path of (choose folder with prompt "` + dialogTitle + `")`
		return "osascript", []string{"-e", script}
	default:
		return "zenity", []string{"--file-selection", "--directory", "--title=" + dialogTitle}
	}
}

// PickDirectory shows the dialog and waits for it to close. A non-zero exit,
// empty output or a dialog program that is not installed all mean no
// selection.
func (p *ExecPicker) PickDirectory(ctx context.Context) (string, bool) {
	name, args := p.command()
	run := p.Run
	if run == nil {
		run = runCommand
	}

	out, err := run(ctx, name, args...)
	if err != nil {
		logging.Debug("Directory dialog returned no selection", "command", name, "error", err)
		return "", false
	}

	path := strings.TrimSpace(string(out))
	if path == "" {
		return "", false
	}

	logging.Debug("Directory selected", "path", path)
	return filepath.Clean(path), true
}
