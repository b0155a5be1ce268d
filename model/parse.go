package model

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

/*
ReadGrid parses an initial-state description from r and returns the grid it
describes.

The format is a sequence of whitespace-separated tokens: an integer row count,
an integer column count, then rows*cols `true`/`false` tokens in row-major
order, one per cell. Any missing or malformed token is a fatal parse error;
no partial grid is ever returned.
*/
func ReadGrid(r io.Reader) (*Grid, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	nextToken := func(what string) (string, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", errors.Wrapf(err, "[ReadGrid] failed reading %s", what)
			}
			return "", errors.Errorf("[ReadGrid] unexpected end of input, expected %s", what)
		}
		return scanner.Text(), nil
	}

	readInt := func(what string) (int, error) {
		tok, err := nextToken(what)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			return 0, errors.Wrapf(err, "[ReadGrid] invalid %s %q", what, tok)
		}
		return n, nil
	}

	rows, err := readInt("row count")
	if err != nil {
		return nil, err
	}
	cols, err := readInt("column count")
	if err != nil {
		return nil, err
	}

	grid, err := NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			tok, err := nextToken("cell value")
			if err != nil {
				return nil, err
			}
			alive, err := strconv.ParseBool(tok)
			if err != nil {
				return nil, errors.Wrapf(err, "[ReadGrid] invalid cell value %q at (%d,%d)", tok, row, col)
			}
			if alive {
				grid.cells[row][col] = true
				grid.aliveCount++
			}
		}
	}

	return grid, nil
}
