// Package bytefall models a square memory space that bytes keep falling into.
//
// Each fallen byte blocks one cell. The walker starts in the top-left corner
// and wants to reach the bottom-right one, moving orthogonally at unit cost.
// Memory answers two questions:
//
//   - ShortestExit: the cheapest exit after the first n bytes have fallen.
//   - FirstBlocking: the earliest byte after which no exit exists at all.
//
// Coordinates in the input are "x,y" pairs where x is the column.
package bytefall

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/gridmap"
)

// Sentinel errors for bytefall.
var (
	// ErrBadCoordinate indicates a line that is not an "x,y" pair of integers.
	ErrBadCoordinate = errors.New("bytefall: malformed coordinate")
	// ErrBadSize indicates a negative memory size.
	ErrBadSize = errors.New("bytefall: size must be non-negative")
	// ErrByteOutOfRange indicates a byte that lands outside the memory space.
	ErrByteOutOfRange = errors.New("bytefall: byte outside memory space")
	// ErrFallenRange indicates a fallen count below zero or above len(Bytes).
	ErrFallenRange = errors.New("bytefall: fallen count out of range")
)

// Option configures a Memory.
type Option func(*Memory)

// WithLogger routes search progress to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(m *Memory) {
		if l != nil {
			m.log = l
		}
	}
}

// Memory is a (Size+1)×(Size+1) space with an ordered list of falling bytes.
type Memory struct {
	Size  int                // largest coordinate on either axis
	Bytes []gridmap.Position // in falling order

	log logrus.FieldLogger
}

// Start is always the top-left corner.
func (m *Memory) Start() gridmap.Position { return gridmap.At(0, 0) }

// Exit is always the bottom-right corner.
func (m *Memory) Exit() gridmap.Position { return gridmap.At(m.Size, m.Size) }

func silentLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
