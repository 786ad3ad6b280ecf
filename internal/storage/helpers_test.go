package storage

import "os"

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func writeFile(path string) error {
	return os.WriteFile(path, []byte("x"), 0o600)
}
