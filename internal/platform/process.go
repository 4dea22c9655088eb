// Package platform holds OS-specific helpers: locating and supervising the
// tapedeckd daemon process next to the GUI binary.
package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"
)

// Operating system constants
const (
	OSWindows = "windows"
)

const (
	// DaemonBinaryName is the proxy binary the GUI can spawn.
	DaemonBinaryName = "tapedeckd"

	// TerminateGrace is how long a daemon gets to exit after SIGTERM
	// before it is killed outright.
	TerminateGrace = 3 * time.Second
)

// DaemonProcess supervises one spawned tapedeckd child.
type DaemonProcess struct {
	cmd *exec.Cmd
}

// LocateDaemon finds the tapedeckd binary: next to the running executable
// first, then on PATH.
func LocateDaemon() (string, error) {
	name := DaemonBinaryName
	if runtime.GOOS == OSWindows {
		name += ".exe"
	}

	if exe, err := os.Executable(); err == nil {
		sibling := filepath.Join(filepath.Dir(exe), name)
		if info, err := os.Stat(sibling); err == nil && !info.IsDir() {
			return sibling, nil
		}
	}

	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%s not found next to the executable or on PATH: %w", DaemonBinaryName, err)
	}
	return path, nil
}

// SpawnDaemon starts tapedeckd as a child process, inheriting the GUI's
// environment so the Spotify credentials reach it.
func SpawnDaemon(binPath string) (*DaemonProcess, error) {
	cmd := exec.Command(binPath)
	cmd.Env = os.Environ()
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", DaemonBinaryName, err)
	}
	return &DaemonProcess{cmd: cmd}, nil
}

// Pid returns the child's process id.
func (d *DaemonProcess) Pid() int {
	if d == nil || d.cmd == nil || d.cmd.Process == nil {
		return 0
	}
	return d.cmd.Process.Pid
}

// Terminate asks the daemon to exit and kills it after TerminateGrace.
// Safe to call on a nil receiver.
func (d *DaemonProcess) Terminate() error {
	if d == nil || d.cmd == nil || d.cmd.Process == nil {
		return nil
	}

	if runtime.GOOS == OSWindows {
		// No SIGTERM on Windows.
		return d.cmd.Process.Kill()
	}

	if err := d.cmd.Process.Signal(os.Interrupt); err != nil {
		return d.cmd.Process.Kill()
	}

	done := make(chan error, 1)
	go func() { done <- d.cmd.Wait() }()

	select {
	case <-done:
		return nil
	case <-time.After(TerminateGrace):
		return d.cmd.Process.Kill()
	}
}
