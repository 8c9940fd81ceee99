package sysfont

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// fontDirs returns the standard font directories for the current
// platform. Directories that do not exist are fine; the scan skips them.
func fontDirs() ([]string, error) {
	home, _ := os.UserHomeDir()

	switch runtime.GOOS {
	case "linux", "freebsd", "openbsd", "netbsd":
		dirs := []string{
			"/usr/share/fonts",
			"/usr/local/share/fonts",
		}
		if home != "" {
			dirs = append(dirs,
				filepath.Join(home, ".local", "share", "fonts"),
				filepath.Join(home, ".fonts"),
			)
		}
		return dirs, nil

	case "darwin":
		dirs := []string{
			"/System/Library/Fonts",
			"/Library/Fonts",
		}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
		}
		return dirs, nil

	case "windows":
		windir := os.Getenv("WINDIR")
		if windir == "" {
			windir = `C:\Windows`
		}
		dirs := []string{filepath.Join(windir, "Fonts")}
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			dirs = append(dirs, filepath.Join(local, "Microsoft", "Windows", "Fonts"))
		}
		return dirs, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, runtime.GOOS)
	}
}
