package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

type prompter struct {
	sc  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{sc: bufio.NewScanner(in), out: out}
}

// ask prints question and returns the trimmed answer. EOF reads as "".
func (p *prompter) ask(question string) string {
	fmt.Fprint(p.out, question)
	if !p.sc.Scan() {
		fmt.Fprintln(p.out)
		return ""
	}
	return strings.TrimSpace(p.sc.Text())
}
