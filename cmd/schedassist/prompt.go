package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// prompter reads interactive input. It doubles as the view layer's
// Confirmer for destructive actions.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func (p *prompter) readLine(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Confirm asks a yes/no question; only an explicit "y"/"yes" proceeds.
func (p *prompter) Confirm(promptText string) bool {
	answer, err := p.readLine(promptText + " [y/N] ")
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func (p *prompter) askString(label string) (string, error) {
	return p.readLine(label + ": ")
}

func (p *prompter) askRequired(label string) (string, error) {
	for {
		value, err := p.askString(label)
		if err != nil {
			return "", err
		}
		if value != "" {
			return value, nil
		}
		fmt.Fprintln(p.out, label+" is required.")
	}
}

// askOptionalInt returns nil when the user leaves the field blank. Blank
// stays nil all the way to the wire; it is never coerced to zero.
func (p *prompter) askOptionalInt(label string) (*int, error) {
	for {
		value, err := p.askString(label + " (blank to skip)")
		if err != nil {
			return nil, err
		}
		if value == "" {
			return nil, nil
		}
		n, convErr := strconv.Atoi(value)
		if convErr != nil {
			fmt.Fprintln(p.out, "Please enter a whole number or leave blank.")
			continue
		}
		return &n, nil
	}
}

func (p *prompter) askInt(label string, fallback int) (int, error) {
	value, err := p.askString(fmt.Sprintf("%s [%d]", label, fallback))
	if err != nil {
		return 0, err
	}
	if value == "" {
		return fallback, nil
	}
	n, convErr := strconv.Atoi(value)
	if convErr != nil {
		return fallback, nil
	}
	return n, nil
}

// askDateTime parses a local "YYYY-MM-DDTHH:MM" value, the same shape a
// datetime-local field produces.
func (p *prompter) askDateTime(label string) (time.Time, error) {
	for {
		value, err := p.askRequired(label + " (YYYY-MM-DDTHH:MM)")
		if err != nil {
			return time.Time{}, err
		}
		t, parseErr := time.ParseInLocation("2006-01-02T15:04", value, time.Local)
		if parseErr != nil {
			fmt.Fprintln(p.out, "Could not parse that, expected e.g. 2024-05-01T10:00.")
			continue
		}
		return t, nil
	}
}

// askClockTime parses an "HH:MM" clock value for weekly class slots.
func (p *prompter) askClockTime(label string) (string, error) {
	for {
		value, err := p.askRequired(label + " (HH:MM)")
		if err != nil {
			return "", err
		}
		if _, parseErr := time.Parse("15:04", value); parseErr != nil {
			fmt.Fprintln(p.out, "Could not parse that, expected e.g. 09:30.")
			continue
		}
		return value, nil
	}
}
