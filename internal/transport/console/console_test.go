package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConsole(input string) (*Console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return New(strings.NewReader(input), out, false), out
}

func TestConsole_RenderBoard(t *testing.T) {
	// Given: a board with a few marks
	game := entity.NewGameFrom([entity.BoardSize]entity.Mark{
		entity.Cross, entity.EmptyCell, entity.Circle,
		entity.EmptyCell, entity.Cross, entity.EmptyCell,
		entity.Circle, entity.EmptyCell, entity.EmptyCell,
	}, entity.SideCircle)
	c, out := newTestConsole("")

	// When: rendering it
	c.RenderBoard(game)

	// Then: the fixed 3x3 layout is printed
	expected := "-------------\n" +
		"| X |   | O |\n" +
		"-------------\n" +
		"|   | X |   |\n" +
		"-------------\n" +
		"| O |   |   |\n" +
		"-------------\n"
	assert.Equal(t, expected, out.String())
}

func TestConsole_ReadCell(t *testing.T) {
	t.Run("Converts the tile number to a cell index", func(t *testing.T) {
		c, out := newTestConsole("5\n")

		cell, err := c.ReadCell()

		require.NoError(t, err)
		assert.Equal(t, 4, cell)
		assert.Contains(t, out.String(), promptCell)
	})

	t.Run("Re-prompts on garbage and out of range numbers", func(t *testing.T) {
		c, out := newTestConsole("abc 0 10 9")

		cell, err := c.ReadCell()

		require.NoError(t, err)
		assert.Equal(t, 8, cell)
		assert.Equal(t, 4, strings.Count(out.String(), promptCell))
		assert.Equal(t, 3, strings.Count(out.String(), msgInvalidCell))
	})

	t.Run("Returns io.EOF when input ends", func(t *testing.T) {
		c, _ := newTestConsole("")

		_, err := c.ReadCell()

		require.ErrorIs(t, err, io.EOF)
	})
}

func TestConsole_ReadTurnOrder(t *testing.T) {
	t.Run("First means Circle", func(t *testing.T) {
		c, _ := newTestConsole("1")

		side, err := c.ReadTurnOrder()

		require.NoError(t, err)
		assert.Equal(t, entity.SideCircle, side)
	})

	t.Run("Re-prompts until 1 or 2", func(t *testing.T) {
		c, out := newTestConsole("3 x -1 2")

		side, err := c.ReadTurnOrder()

		require.NoError(t, err)
		assert.Equal(t, entity.SideCross, side)
		assert.Equal(t, 4, strings.Count(out.String(), promptTurnOrder))
	})
}

func TestConsole_ReadMode(t *testing.T) {
	tests := []struct {
		input string
		want  entity.Mode
	}{
		{input: "M", want: entity.ModeMultiplayer},
		{input: "m", want: entity.ModeMultiplayer},
		{input: "A", want: entity.ModeBot},
		{input: "a", want: entity.ModeBot},
		{input: "q", want: entity.ModeNone},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, _ := newTestConsole(tt.input)

			mode, err := c.ReadMode()

			require.NoError(t, err)
			assert.Equal(t, tt.want, mode)
		})
	}
}

func TestConsole_ReadQuit(t *testing.T) {
	c, _ := newTestConsole("y N Y maybe")

	for _, want := range []bool{true, false, true, false} {
		quit, err := c.ReadQuit()
		require.NoError(t, err)
		assert.Equal(t, want, quit)
	}

	_, err := c.ReadQuit()
	require.ErrorIs(t, err, io.EOF)
}

func TestConsole_AnnounceOutcome(t *testing.T) {
	tests := []struct {
		outcome entity.Outcome
		want    string
	}{
		{outcome: entity.CircleWins, want: "Circle Wins!\n"},
		{outcome: entity.CrossWins, want: "Cross Wins!\n"},
		{outcome: entity.Draw, want: "Draw!\n"},
		{outcome: entity.InProgress, want: ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.outcome), func(t *testing.T) {
			c, out := newTestConsole("")

			c.AnnounceOutcome(tt.outcome)

			assert.Equal(t, tt.want, out.String())
		})
	}
}
