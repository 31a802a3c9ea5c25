package mazefile_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/lvmaze/mazefile"
)

func ExampleReadNumeric() {
	in := `3 3
-1  0  0
 1  1  3
 1  1 -2`
	g, err := mazefile.ReadNumeric(strings.NewReader(in))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	rows, _ := mazefile.FormatLayout(g, nil)
	fmt.Println(strings.Join(rows, "\n"))
	_ = mazefile.WriteNumeric(os.Stdout, g)

	// Output:
	// S..
	// ##^
	// ##E
	// 3 3
	// -1 0 0
	// 1 1 3
	// 1 1 -2
}
