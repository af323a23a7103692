package engine_test

import (
	"fmt"

	"github.com/plus3/fourline/engine"
)

// ExampleSession plays a complete game under classic rules. Red and Blue
// alternate automatically; the session ends the game on the first completed
// run.
func ExampleSession() {
	session, _ := engine.NewSession(engine.Classic())

	for _, column := range []uint32{0, 0, 1, 1, 2, 2, 3} {
		session.ApplyMove(column)
	}

	if winner, ok := session.Winner(); ok {
		fmt.Printf("%s wins after %d moves\n", winner, session.Moves())
	}
	fmt.Print(session.Render())

	// Output:
	// red wins after 7 moves
	// .......
	// .......
	// .......
	// .......
	// BBB....
	// RRRR...
}

// ExampleSession_ApplyMove shows the move error taxonomy: columns outside
// the board and full columns are rejected with the session left untouched.
func ExampleSession_ApplyMove() {
	session, _ := engine.NewSession(engine.Classic())

	if _, err := session.ApplyMove(99); err != nil {
		fmt.Println(err)
	}

	for i := 0; i < 6; i++ {
		session.ApplyMove(0)
	}
	if _, err := session.ApplyMove(0); err != nil {
		fmt.Println(err)
	}

	// Output:
	// out of range
	// column full
}
