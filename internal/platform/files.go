package platform

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/m-mizutani/goerr/v2"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		if err := os.MkdirAll(dirPath, DefaultDirPermissions); err != nil {
			return goerr.Wrap(err, "failed to create directory", goerr.V("path", dirPath))
		}
	}
	return nil
}

// DirectoryExists reports whether path exists and is a directory
func DirectoryExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", goerr.Wrap(err, "failed to get user home directory")
	}
	return filepath.Join(homeDir, "Downloads"), nil
}

// RevealDirectory opens dir in the system file manager
func RevealDirectory(dir string) error {
	if !DirectoryExists(dir) {
		return goerr.New("directory does not exist", goerr.V("path", dir))
	}

	absPath, err := filepath.Abs(dir)
	if err != nil {
		return goerr.Wrap(err, "failed to get absolute path", goerr.V("path", dir))
	}

	name, args, err := revealCommand(runtime.GOOS, absPath)
	if err != nil {
		return err
	}
	if err := exec.Command(name, args...).Start(); err != nil {
		return goerr.Wrap(err, "failed to open file manager", goerr.V("command", name))
	}
	return nil
}

// revealCommand picks the command that opens a folder on goos
func revealCommand(goos, dir string) (string, []string, error) {
	switch goos {
	case OSDarwin:
		return OpenCommand, []string{dir}, nil
	case OSWindows:
		return ExplorerCommand, []string{dir}, nil
	case OSLinux:
		if _, err := exec.LookPath(XDGOpenCommand); err == nil {
			return XDGOpenCommand, []string{dir}, nil
		}
		for _, fm := range LinuxFileManagers {
			if _, err := exec.LookPath(fm); err == nil {
				return fm, []string{dir}, nil
			}
		}
		return "", nil, goerr.New("no suitable file manager found")
	default:
		return "", nil, goerr.New("unsupported operating system", goerr.V("goos", goos))
	}
}
