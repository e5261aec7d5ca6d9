// Command zxcguess estimates how many guesses an attacker would need to
// crack a password, using the reference dictionary producer plus a
// synthesized brute-force fallback.
//
// This CLI is a thin demonstration of the library; the guess-estimation
// core itself has no CLI or UI concerns (see the module's design notes).
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/corezx/zxcguess"
	"github.com/corezx/zxcguess/producer/dictionary"
)

func main() {
	wordlistPath := flag.String("wordlist", "", "path to a newline-separated common-password list, most common first")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: zxcguess [-wordlist FILE] PASSWORD")
		os.Exit(2)
	}
	password := flag.Arg(0)

	words, err := loadWordlist(*wordlistPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "zxcguess:", err)
		os.Exit(1)
	}

	list, err := dictionary.New(words)
	if err != nil {
		fmt.Fprintln(os.Stderr, "zxcguess:", err)
		os.Exit(1)
	}

	result, err := zxcguess.MostGuessableMatchSequence(password, list.Find(password), zxcguess.DefaultConfig())
	if err != nil {
		fmt.Fprintln(os.Stderr, "zxcguess:", err)
		os.Exit(1)
	}

	fmt.Printf("guesses:       %.0f\n", result.Guesses)
	fmt.Printf("guesses_log10: %.2f\n", result.GuessesLog10)
	fmt.Println("sequence:")
	for _, m := range result.Sequence {
		h := m.Head()
		fmt.Printf("  [%d,%d] %-10s %q guesses=%.0f\n", h.I, h.J, m.Kind(), h.Token, h.Guesses)
	}
}

// defaultWordlist is used when -wordlist is not supplied: a small,
// illustrative list of very common passwords, ranked most common first.
var defaultWordlist = []string{
	"123456", "password", "12345678", "qwerty", "123456789",
	"letmein", "1234567", "football", "iloveyou", "admin",
}

func loadWordlist(path string) ([]string, error) {
	if path == "" {
		return defaultWordlist, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening wordlist: %w", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line != "" {
			words = append(words, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading wordlist: %w", err)
	}
	return words, nil
}
