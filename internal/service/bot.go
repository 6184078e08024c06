package service

import (
	"time"

	"golang.org/x/exp/rand"
)

// BotService picks the computer's cell among the available ones.
type BotService interface {
	ChooseCell(availableCells []int) int
}

type botService struct {
	rng *rand.Rand
}

// NewBotService seeds the random source once. A zero seed is replaced with the current time.
func NewBotService(seed uint64) BotService {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &botService{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// ChooseCell returns one of availableCells uniformly at random, or -1 when there is nothing to choose.
func (that *botService) ChooseCell(availableCells []int) int {
	if len(availableCells) == 0 {
		return -1
	}

	return availableCells[that.rng.Intn(len(availableCells))]
}
