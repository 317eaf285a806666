package game

import "errors"

// Rule violations. Every operation checks these before touching state.
var (
	ErrNotFound              = errors.New("not found")
	ErrNotYourTurn           = errors.New("not your turn")
	ErrAlreadyRolled         = errors.New("dice already rolled for this turn")
	ErrInvalidMove           = errors.New("invalid move")
	ErrBattleInProgress      = errors.New("a battle is in progress")
	ErrNoActiveBattle        = errors.New("no active battle")
	ErrNotYourBattle         = errors.New("not your battle")
	ErrCannotCollectLoot     = errors.New("cannot collect loot unless you have won the battle")
	ErrCannotReturnToTown    = errors.New("cannot return to town unless you have lost the battle")
	ErrItemNotOwned          = errors.New("item not in inventory")
	ErrInvalidItem           = errors.New("invalid item")
	ErrItemNotUsable         = errors.New("item cannot be used")
	ErrInvalidPlayerName     = errors.New("player name is required")
	ErrInvalidProfilePicture = errors.New("unknown profile picture")
	ErrForbidden             = errors.New("forbidden")
)
