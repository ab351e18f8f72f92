package delaystate_test

import (
	"fmt"
	"time"

	"github.com/fivecar/delaystate"
)

func Example() {
	// a search box: the text field updates on every keystroke, the query
	// driving results settles only after the user pauses
	search := delaystate.NewFollow("")
	search.SubscribeFollowing(func(q string) {
		fmt.Println("searching for:", q)
	})
	defer search.Close()

	search.Set("g", 20*time.Millisecond)
	search.Set("go", 20*time.Millisecond)
	fmt.Println("typed:", search.Immediate())

	time.Sleep(50 * time.Millisecond)
	// Output:
	// typed: go
	// searching for: go
}

func ExampleDelayed_Cancel() {
	// a toast notification that auto-dismisses unless interacted with
	visible := delaystate.NewEqDelayed(true)
	visible.SetAfter(false, 10*time.Millisecond)
	visible.Cancel() // user hovered; keep it up
	time.Sleep(30 * time.Millisecond)
	fmt.Println(visible.Get())
	// Output:
	// true
}

func ExampleFollow_Revert() {
	color := delaystate.NewFollow("blue")
	color.Set("red", time.Hour) // preview now, commit later
	color.Revert()              // user backed out
	imm, fol := color.Get()
	fmt.Println(imm, fol)
	// Output:
	// blue blue
}
