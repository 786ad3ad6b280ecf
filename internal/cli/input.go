package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/listen/internal/models"
)

// GetSimpleText prints a prompt to w and reads one trimmed line. A partial
// last line before EOF is returned as input.
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetTextOrKeep is GetSimpleText where empty input keeps current.
func GetTextOrKeep(reader *bufio.Reader, prompt, current string, w io.Writer) (string, error) {
	v, err := GetSimpleText(reader, fmt.Sprintf("%s [%s]", prompt, current), w)
	if err != nil {
		return "", err
	}
	if v == "" {
		return current, nil
	}
	return v, nil
}

// GetMultiline reads lines until an empty one and joins them with '\n'.
func GetMultiline(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n(press Enter on an empty line to finish)\n"); err != nil {
		return "", err
	}

	var lines []string
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		lines = append(lines, line)
		if err != nil {
			break
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// GetYesNo asks a y/n question. Anything but y or yes is no.
func GetYesNo(reader *bufio.Reader, prompt string, w io.Writer) (bool, error) {
	v, err := GetSimpleText(reader, prompt+" (y/n)", w)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(v) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// GetWritingTime lists the writing times and reads a choice by number or
// name. Empty input keeps current.
func GetWritingTime(reader *bufio.Reader, current models.WritingTime, w io.Writer) (models.WritingTime, error) {
	var b strings.Builder
	b.WriteString("Preferred writing time")
	for i, wt := range models.WritingTimes {
		fmt.Fprintf(&b, "\n  %d) %s", i+1, wt.DisplayName())
	}
	if current.Valid() {
		fmt.Fprintf(&b, "\n[%s]", current)
	}

	v, err := GetSimpleText(reader, b.String(), w)
	if err != nil {
		return "", err
	}
	if v == "" && current.Valid() {
		return current, nil
	}
	for i, wt := range models.WritingTimes {
		if v == fmt.Sprint(i+1) {
			return wt, nil
		}
	}
	return models.ParseWritingTime(v)
}
