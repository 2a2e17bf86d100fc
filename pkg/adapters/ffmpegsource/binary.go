package ffmpegsource

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// findBinary locates an ffmpeg-suite executable. A non-empty custom path is
// used as is; otherwise PATH is searched, then common install locations.
func findBinary(name, custom string) (string, error) {
	if custom != "" {
		if _, err := os.Stat(custom); err == nil {
			return custom, nil
		}
		return "", fmt.Errorf("%w: custom path %s not found", ErrBinaryNotFound, custom)
	}

	execName := name
	if runtime.GOOS == "windows" {
		execName = name + ".exe"
	}

	if path, err := exec.LookPath(execName); err == nil {
		return path, nil
	}

	var dirs []string
	if runtime.GOOS == "windows" {
		dirs = []string{
			`C:\ffmpeg\bin`,
			`C:\Program Files\ffmpeg\bin`,
			`C:\Program Files (x86)\ffmpeg\bin`,
		}
	} else {
		dirs = []string{
			"/usr/bin",
			"/usr/local/bin",
			"/opt/homebrew/bin",
			"/snap/bin",
		}
	}

	for _, dir := range dirs {
		p := dir + string(os.PathSeparator) + execName
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrBinaryNotFound, name)
}
