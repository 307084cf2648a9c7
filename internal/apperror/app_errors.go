package apperror

import "errors"

var (
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrCellAlreadyEmpty = errors.New("cell is already empty")
	ErrInvalidCell      = errors.New("invalid cell index")
	ErrNoLegalMoves     = errors.New("no legal moves")
)
