package paths

import (
	"os"
	"path/filepath"
)

const (
	AppDirName       = "bubbleicon"
	ConfigFileName   = "icons-config.json"
	LogFileName      = "bubbleicon.log"
	DefaultOutputDir = "extension/public/icons"
	DirPerm          = 0755
	FilePerm         = 0644
)

// AtomicWrite replaces the file at path with data. The bytes land in
// path+".tmp" first and are renamed over the target, so an icon from a
// previous run is either kept whole or swapped for the new one; a failed
// write never leaves a truncated PNG behind. Missing parent directories
// are created.
func AtomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return err
	}
	tmp := filepath.Join(dir, filepath.Base(path)+".tmp")
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// DataDir is where the optional config file and run log live:
// %APPDATA%\bubbleicon when APPDATA is set, ~/.config/bubbleicon otherwise,
// and the temp dir as a last resort.
func DataDir() string {
	base := os.Getenv("APPDATA")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), AppDirName)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, AppDirName)
}
