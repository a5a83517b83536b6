package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/ND-CSE-40657/hw2/model2"
)

// TranslateCLI reads one source sentence per line (space-separated words) and
// prints its greedy translation. Type 'exit' to quit.
func TranslateCLI(m *model2.Model) {
	reader := bufio.NewReader(os.Stdin)
	fmt.Println("Model 2 translator. Type 'exit' to quit.")
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			break
		}
		line = strings.TrimSpace(line)
		if line == "exit" {
			break
		}
		fwords := append(strings.Fields(line), model2.EOS)
		fmt.Println(strings.Join(m.Translate(fwords), " "))
	}
}
