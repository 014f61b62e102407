// Validated prompting: repeat the question until the answer passes.
package main

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/mashiro/ask"
)

func main() {
	a, err := ask.New()
	if err != nil {
		log.Fatal(err)
	}
	defer a.Close()

	port, err := a.ValidPrompt("Which port should the server listen on?", func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		if n < 1 || n > 65535 {
			return fmt.Errorf("port %d out of range", n)
		}
		return nil
	})
	if errors.Is(err, ask.ErrCanceled) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Listening on port %s.\n", port)
}
