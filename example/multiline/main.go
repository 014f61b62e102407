// Multiline input terminated by the default ".." sentinel.
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

	text, err := a.MultilinePrompt("Tell me something interesting")
	if errors.Is(err, ask.ErrCanceled) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Got back:\n%s\n", text)
}
