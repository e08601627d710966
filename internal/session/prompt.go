// Package session runs the interactive explore loop: collect filters, load,
// report, show raw rows, repeat.
package session

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rcliao/bikeshare/internal/model"
)

// Prompter asks questions on out and reads one line answers from in.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter creates a Prompter over the given streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Ask prints prompt and returns the next line of input. It returns io.EOF
// once input is exhausted.
func (p *Prompter) Ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.in.Text(), nil
}

// Choose asks until parse accepts the answer, printing invalid after each
// rejected one. There is no retry limit.
func (p *Prompter) Choose(prompt, invalid string, parse func(string) (string, bool)) (string, error) {
	for {
		answer, err := p.Ask(prompt)
		if err != nil {
			return "", err
		}
		if v, ok := parse(answer); ok {
			return v, nil
		}
		fmt.Fprintln(p.out, invalid)
	}
}

// YesNo asks until the answer is yes or no.
func (p *Prompter) YesNo(prompt string) (bool, error) {
	answer, err := p.Choose(prompt, "\nYou entered an invalid response.", parseYesNo)
	if err != nil {
		return false, err
	}
	return answer == "yes", nil
}

func parseYesNo(s string) (string, bool) {
	s = model.Normalize(s)
	return s, s == "yes" || s == "no"
}

// CollectFilters asks for city, month and day until each is valid.
func CollectFilters(p *Prompter) (model.Filter, error) {
	var f model.Filter
	var err error

	fmt.Fprintln(p.out, "Hello! Let's explore some US bikeshare data!")

	f.City, err = p.Choose("Enter the city to filter on (chicago, new york city, or washington): ",
		"That is not a valid city.", model.ParseCity)
	if err != nil {
		return f, err
	}

	f.Month, err = p.Choose(`Enter the month to filter on (January through June), or "all" for no filter: `,
		"That is not a valid month.", model.ParseMonth)
	if err != nil {
		return f, err
	}

	f.Day, err = p.Choose(`Enter the day of the week to filter on, or "all" for no filter: `,
		"That is not a valid weekday.", model.ParseDay)
	if err != nil {
		return f, err
	}

	return f, nil
}
