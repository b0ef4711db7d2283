package cli

import (
	"os/exec"
	"runtime"
)

// OpenFile opens path with the desktop's default handler for its type
// without waiting for the application to exit.
func OpenFile(path string) error {
	return openCommand(runtime.GOOS, path).Start()
}

func openCommand(goos, path string) *exec.Cmd {
	switch goos {
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	case "darwin":
		return exec.Command("open", path)
	default:
		return exec.Command("xdg-open", path)
	}
}
