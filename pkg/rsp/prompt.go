package rsp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompt asks for each answer on out and reads one line per answer from in.
// Input that ends early leaves the remaining answers empty.
func Prompt(in io.Reader, out io.Writer) (Answers, error) {
	p := &prompter{reader: bufio.NewReader(in), out: out}

	var a Answers
	a.Output = p.ask("Enter output file path:")
	a.Language = p.ask("Enter language (e.g., c#, python, or all):")
	a.Note = yes(p.ask("Write each file's path before its content? (yes/no):"))
	a.Sort = p.ask("Sort by (AB - file name, TP - file type, NO - discovery order):")
	a.RemoveEmptyLines = yes(p.ask("Remove empty lines? (yes/no):"))
	a.Author = p.ask("Enter author name:")

	if p.err != nil {
		return Answers{}, fmt.Errorf("failed to read user input: %w", p.err)
	}
	return a, nil
}

type prompter struct {
	reader *bufio.Reader
	out    io.Writer
	err    error
	eof    bool
}

func (p *prompter) ask(question string) string {
	if p.err != nil {
		return ""
	}
	fmt.Fprintln(p.out, question)
	if p.eof {
		return ""
	}
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			p.err = err
			return ""
		}
		p.eof = true
	}
	return strings.TrimRight(line, "\r\n")
}

// yes reports whether the answer is "y" or "yes", ignoring case and
// surrounding spaces.
func yes(answer string) bool {
	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes"
}
