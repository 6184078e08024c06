package tictactoe

import "github.com/stretchr/testify/mock"

type mockBotService struct {
	mock.Mock
}

func newMockBotService(t interface {
	mock.TestingT
	Cleanup(func())
},
) *mockBotService {
	m := &mockBotService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *mockBotService) ChooseCell(availableCells []int) int {
	args := m.Called(availableCells)
	return args.Int(0)
}

// firstCellBot always picks the lowest free index.
type firstCellBot struct{}

func (firstCellBot) ChooseCell(availableCells []int) int {
	if len(availableCells) == 0 {
		return -1
	}
	return availableCells[0]
}
