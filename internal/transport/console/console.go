package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	rule = "-------------"

	promptCell      = "Please enter a tile: "
	promptTurnOrder = "Do you want to go first or second(type 1 or 2): "
	promptMode      = "Multiplayer or Ai(M/A): "
	promptQuit      = "Do you want to quit?(Y/N)"

	msgCellOccupied = "This tile is already occupied try again!"
	msgInvalidCell  = "Tiles are numbered 1 to 9, try again!"

	circleColor = "#1E90FF"
	crossColor  = "#DC143C"
)

// Console - reads whitespace separated tokens from the player and writes the board,
// prompts and results.
type Console struct {
	scanner *bufio.Scanner
	output  *termenv.Output
}

// New - creates a console. With color off, or when out is not a terminal, glyphs are
// written as plain text.
func New(in io.Reader, out io.Writer, color bool) *Console {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	profile := termenv.Ascii
	if color {
		profile = termenv.NewOutput(out).EnvColorProfile()
	}

	return &Console{
		scanner: scanner,
		output:  termenv.NewOutput(out, termenv.WithProfile(profile)),
	}
}

// RenderBoard - prints the 3x3 grid, rows separated by a rule line.
func (that *Console) RenderBoard(game *entity.Game) {
	var sb strings.Builder

	sb.WriteString(rule + "\n")
	for i, mark := range game.Board() {
		fmt.Fprintf(&sb, "| %s ", that.glyph(mark))

		if (i+1)%3 == 0 {
			sb.WriteString("|\n" + rule + "\n")
		}
	}

	fmt.Fprint(that.output, sb.String())
}

// AnnounceOutcome - prints the result of a finished round.
func (that *Console) AnnounceOutcome(outcome entity.Outcome) {
	switch outcome {
	case entity.CircleWins:
		that.Println("Circle Wins!")
	case entity.CrossWins:
		that.Println("Cross Wins!")
	case entity.Draw:
		that.Println("Draw!")
	}
}

// ReportOccupied - tells the player to pick another tile.
func (that *Console) ReportOccupied() {
	that.Println(msgCellOccupied)
}

func (that *Console) Println(msg string) {
	fmt.Fprintln(that.output, msg)
}

// ReadCell - asks for a 1-indexed tile and returns the 0-indexed cell. Input that is
// not a number on the board is rejected here, before it can reach the game.
func (that *Console) ReadCell() (int, error) {
	for {
		that.Println(promptCell)

		token, err := that.next()
		if err != nil {
			return 0, err
		}

		number, err := strconv.Atoi(token)
		if err != nil || !entity.ValidCell(number-1) {
			that.Println(msgInvalidCell)
			continue
		}

		return number - 1, nil
	}
}

// ReadTurnOrder - asks whether the human goes first or second until the answer is 1
// or 2. Going first means playing Circle.
func (that *Console) ReadTurnOrder() (entity.Side, error) {
	for {
		that.Println(promptTurnOrder)

		token, err := that.next()
		if err != nil {
			return 0, err
		}

		switch number, _ := strconv.Atoi(token); number {
		case 1:
			return entity.SideCircle, nil
		case 2:
			return entity.SideCross, nil
		}
	}
}

// ReadMode - asks for multiplayer or a game against the engine. Any other answer
// yields ModeNone.
func (that *Console) ReadMode() (entity.Mode, error) {
	that.Println(promptMode)

	token, err := that.next()
	if err != nil {
		return entity.ModeNone, err
	}

	switch token {
	case "M", "m":
		return entity.ModeMultiplayer, nil
	case "A", "a":
		return entity.ModeBot, nil
	default:
		return entity.ModeNone, nil
	}
}

// ReadQuit - true only for Y or y.
func (that *Console) ReadQuit() (bool, error) {
	that.Println(promptQuit)

	token, err := that.next()
	if err != nil {
		return false, err
	}

	return token == "Y" || token == "y", nil
}

func (that *Console) next() (string, error) {
	if that.scanner.Scan() {
		return that.scanner.Text(), nil
	}

	if err := that.scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return "", io.EOF
}

func (that *Console) glyph(mark entity.Mark) string {
	if mark != entity.EmptyCell && that.output.Profile == termenv.Ascii {
		return string(mark)
	}

	switch mark {
	case entity.Circle:
		return that.output.String(string(mark)).Foreground(that.output.Color(circleColor)).Bold().String()
	case entity.Cross:
		return that.output.String(string(mark)).Foreground(that.output.Color(crossColor)).Bold().String()
	default:
		return " "
	}
}
