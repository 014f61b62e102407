// Basic prompting: ask one question, print the answer.
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

	name, err := a.Prompt("What is your name?")
	if errors.Is(err, ask.ErrCanceled) {
		fmt.Println("\nNever mind.")
		return
	}
	if err != nil {
		log.Fatal(err)
	}
	a.Display(fmt.Sprintf("Hello, %s!", name))
}
