package persistence

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"cavern-realm/server/models"
)

// ErrNoSavedState means there is nothing usable to resume from. A missing
// file and a malformed one are treated the same way.
var ErrNoSavedState = errors.New("no saved state")

// EncodeSaveState writes the three-line save format: seed, x, y.
func EncodeSaveState(w io.Writer, state models.SaveState) error {
	_, err := fmt.Fprintf(w, "%d\n%d\n%d\n", state.Seed, state.X, state.Y)
	return err
}

// DecodeSaveState reads the three-line save format. Anything that does not
// parse yields ErrNoSavedState; trailing lines are ignored.
func DecodeSaveState(r io.Reader) (models.SaveState, error) {
	scanner := bufio.NewScanner(r)
	var fields [3]string
	for i := range fields {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return models.SaveState{}, fmt.Errorf("%w: %v", ErrNoSavedState, err)
			}
			return models.SaveState{}, fmt.Errorf("%w: expected 3 lines, got %d", ErrNoSavedState, i)
		}
		fields[i] = strings.TrimSpace(scanner.Text())
	}

	seed, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return models.SaveState{}, fmt.Errorf("%w: seed: %v", ErrNoSavedState, err)
	}
	x, err := strconv.Atoi(fields[1])
	if err != nil {
		return models.SaveState{}, fmt.Errorf("%w: x: %v", ErrNoSavedState, err)
	}
	y, err := strconv.Atoi(fields[2])
	if err != nil {
		return models.SaveState{}, fmt.Errorf("%w: y: %v", ErrNoSavedState, err)
	}
	return models.SaveState{Seed: seed, X: x, Y: y}, nil
}

// WriteSaveFile replaces the file at path with state.
func WriteSaveFile(path string, state models.SaveState) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create save file: %w", err)
	}
	if err := EncodeSaveState(f, state); err != nil {
		f.Close()
		return fmt.Errorf("write save file: %w", err)
	}
	return f.Close()
}

// ReadSaveFile loads the state at path. A missing file is ErrNoSavedState.
func ReadSaveFile(path string) (models.SaveState, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.SaveState{}, ErrNoSavedState
		}
		return models.SaveState{}, fmt.Errorf("open save file: %w", err)
	}
	defer f.Close()
	return DecodeSaveState(f)
}
