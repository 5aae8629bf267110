package repository

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rocketscienceinc/tictactoe-nxn/internal/entity"
)

// FileJournal appends records to a plain text file. The file is opened and
// closed on every write, so a crash leaves everything up to the last
// completed record intact.
type FileJournal struct {
	path string
}

func NewFileJournal(path string) *FileJournal {
	return &FileJournal{path: path}
}

// Start truncates the file and writes the header.
func (that *FileJournal) Start(_ context.Context, _ string, size int) error {
	return that.write(os.O_CREATE|os.O_TRUNC|os.O_WRONLY, HeaderLines(size))
}

func (that *FileJournal) Record(_ context.Context, record entity.MoveRecord) error {
	return that.write(os.O_CREATE|os.O_APPEND|os.O_WRONLY, RecordLines(record))
}

func (that *FileJournal) Location(_ string) string {
	return that.path
}

func (that *FileJournal) write(flag int, lines []string) (err error) {
	file, err := os.OpenFile(that.path, flag, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close journal: %w", closeErr)
		}
	}()

	if _, err = file.WriteString(strings.Join(lines, "\n") + "\n"); err != nil {
		return fmt.Errorf("failed to write journal: %w", err)
	}

	return nil
}
