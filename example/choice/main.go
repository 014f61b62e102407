// Menu selection: pick an option by number, full text, or prefix.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/mashiro/ask"
)

func main() {
	a, err := ask.New()
	if err != nil {
		log.Fatal(err)
	}
	defer a.Close()

	options := []string{
		"Deploy to staging",
		"Deploy to production",
		"Roll back the last deploy\n(requires a release tag)",
		"Quit",
	}

	i, err := a.Choose("Here are a few options.", options)
	if errors.Is(err, ask.ErrCanceled) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("You chose: %s\n", options[i])
}
