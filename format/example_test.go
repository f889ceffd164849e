package format_test

import (
	"fmt"

	"github.com/loglayer-go/loglayer/core"
	"github.com/loglayer-go/loglayer/format"
)

func ExampleBody() {
	// Placeholders consume arguments positionally.
	fmt.Println(format.Body("connected to %@ on port %d",
		[]core.Value{core.String("db-primary"), core.Int(5432)}))

	// Leftover arguments are never dropped.
	fmt.Println(format.Body("shutdown",
		[]core.Value{core.String("signal"), core.Int(15)}))

	// Empty collections vanish entirely.
	fmt.Println(format.Body("queue state", []core.Value{core.List()}))

	// Output:
	// connected to db-primary on port 5432
	// shutdown [Extra Args: signal, 15]
	// queue state
}
