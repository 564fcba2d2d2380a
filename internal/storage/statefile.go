package storage

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/Kekatrice/DiscordBotty/internal/errors"
)

// BackupSuffix is appended to the last known-good copy of a state file
const BackupSuffix = ".backup"

// Load reads a JSON state file into v. A missing file leaves v at its
// zero value and returns nil: first start is not an error. An
// unreadable or unparsable file returns a corrupted error so the caller
// can log a warning and continue with an empty store.
func Load(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.WrapWithCode(err, errors.CodeCorrupted, "read state file "+path)
	}

	if len(data) == 0 {
		return errors.Corruptedf("state file %s is empty", path)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return errors.WrapWithCode(err, errors.CodeCorrupted, "parse state file "+path)
	}

	return nil
}

// Save durably persists v as indented JSON. The write goes to a
// temporary file in the same directory followed by a rename, so a crash
// mid-write can never leave a torn state file. After a successful swap
// the previous contents are kept as a rotating single backup.
func Save(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return errors.Wrap(err, "marshal state for "+path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "create state directory "+dir)
		}
	}

	// Rotate the backup from the current good copy before replacing it
	if _, statErr := os.Stat(path); statErr == nil {
		if err := copyFile(path, path+BackupSuffix); err != nil {
			return errors.Wrap(err, "rotate backup for "+path)
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0o644); err != nil {
		return errors.Wrap(err, "write temp state file "+tmp)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrap(err, "replace state file "+path)
	}

	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}

	return out.Close()
}
