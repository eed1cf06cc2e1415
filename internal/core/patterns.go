package core

func init() {
	RegisterPattern(Pattern{
		Name:        "block",
		Description: "2x2 still life",
		Cells:       [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	})
	RegisterPattern(Pattern{
		Name:        "blinker",
		Description: "period 2 oscillator",
		Cells:       [][2]int{{0, 0}, {1, 0}, {2, 0}},
	})
	RegisterPattern(Pattern{
		Name:        "toad",
		Description: "period 2 oscillator",
		Cells:       [][2]int{{1, 0}, {2, 0}, {3, 0}, {0, 1}, {1, 1}, {2, 1}},
	})
	RegisterPattern(Pattern{
		Name:        "beacon",
		Description: "period 2 oscillator made of two blocks",
		Cells:       [][2]int{{0, 0}, {1, 0}, {0, 1}, {3, 2}, {2, 3}, {3, 3}},
	})
	RegisterPattern(Pattern{
		Name:        "glider",
		Description: "diagonal spaceship, period 4",
		Cells:       [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
	})
	RegisterPattern(Pattern{
		Name:        "lwss",
		Description: "lightweight spaceship",
		Cells:       [][2]int{{1, 0}, {4, 0}, {0, 1}, {0, 2}, {4, 2}, {0, 3}, {1, 3}, {2, 3}, {3, 3}},
	})
	RegisterPattern(Pattern{
		Name:        "rpentomino",
		Description: "methuselah, stabilises after 1103 generations",
		Cells:       [][2]int{{1, 0}, {2, 0}, {0, 1}, {1, 1}, {1, 2}},
	})
	RegisterPattern(Pattern{
		Name:        "acorn",
		Description: "methuselah, stabilises after 5206 generations",
		Cells:       [][2]int{{1, 0}, {3, 1}, {0, 2}, {1, 2}, {4, 2}, {5, 2}, {6, 2}},
	})
	RegisterPattern(Pattern{
		Name:        "gosper-gun",
		Description: "Gosper glider gun, emits a glider every 30 generations",
		Cells: [][2]int{
			{24, 0},
			{22, 1}, {24, 1},
			{12, 2}, {13, 2}, {20, 2}, {21, 2}, {34, 2}, {35, 2},
			{11, 3}, {15, 3}, {20, 3}, {21, 3}, {34, 3}, {35, 3},
			{0, 4}, {1, 4}, {10, 4}, {16, 4}, {20, 4}, {21, 4},
			{0, 5}, {1, 5}, {10, 5}, {14, 5}, {16, 5}, {17, 5}, {22, 5}, {24, 5},
			{10, 6}, {16, 6}, {24, 6},
			{11, 7}, {15, 7},
			{12, 8}, {13, 8},
		},
	})
}
