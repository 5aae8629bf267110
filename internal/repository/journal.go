package repository

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-nxn/internal/entity"
)

const (
	headerSeparator = "================================="
	recordSeparator = "---------------------------"
)

// HeaderLines opens every journal.
func HeaderLines(size int) []string {
	return []string{
		fmt.Sprintf("Tic-Tac-Toe Log (board %d x %d)", size, size),
		headerSeparator,
	}
}

// RecordLines is the text form of one record: the optional annotation, one
// line per board row and a dashed separator.
func RecordLines(record entity.MoveRecord) []string {
	lines := make([]string, 0, len(record.Board)+2)

	if record.Annotation != "" {
		lines = append(lines, record.Annotation)
	}

	for _, row := range record.Board {
		cells := make([]string, len(row))
		for i, mark := range row {
			cells[i] = mark.String()
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	return append(lines, recordSeparator)
}
