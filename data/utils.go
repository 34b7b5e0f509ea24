package data

import (
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
)

func getHomeDir() (string, error) {
	return homedir.Dir()
}

func defaultJournalPath(fileName string) (string, error) {
	homeDir, err := getHomeDir()
	if err != nil {
		return "", fmt.Errorf("did not find home dir for journal: %w", err)
	}

	path := filepath.Join(homeDir, ".okcard", fileName)
	err = os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return "", err
	}
	return path, nil
}
