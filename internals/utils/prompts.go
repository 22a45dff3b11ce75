package utils

import (
	"errors"
	"strings"

	"github.com/manifoldco/promptui"
)

// ErrAborted is returned if the user aborted a prompt with ctrl-c or ctrl-d
var ErrAborted = errors.New("aborted")

// SelectPrompt runs prompt and returns the selected item
func SelectPrompt(prompt *promptui.Select) (string, error) {
	_, res, err := prompt.Run()
	if err != nil {
		return "", promptError(err)
	}
	return res, nil
}

// StringPrompt runs prompt and returns the trimmed input
func StringPrompt(prompt *promptui.Prompt) (string, error) {
	res, err := prompt.Run()
	if err != nil {
		return "", promptError(err)
	}
	return strings.TrimSpace(res), nil
}

// NotEmpty can be used as promptui.ValidateFunc
func NotEmpty(input string) error {
	if strings.TrimSpace(input) == "" {
		return errors.New("can not be empty")
	}
	return nil
}

// NoWhitespace can be used as promptui.ValidateFunc for names & ids
func NoWhitespace(input string) error {
	if err := NotEmpty(input); err != nil {
		return err
	}
	if strings.ContainsAny(strings.TrimSpace(input), " \t") {
		return errors.New("can not contain spaces")
	}
	return nil
}

func promptError(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrAbort) {
		return ErrAborted
	}
	return err
}
