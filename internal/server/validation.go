package server

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

func validateName(name string, max int) (string, error) {
	return validateText("name", name, max)
}

func validateChat(text string, max int) (string, error) {
	return validateText("message", text, max)
}

func validateText(field, value string, max int) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", errors.New(field + " is required")
	}
	if len(trimmed) > max {
		return "", fmt.Errorf("%s must be %d characters or fewer", field, max)
	}
	if !isSafeText(trimmed) {
		return "", errors.New(field + " contains unsupported characters")
	}
	return trimmed, nil
}

func isSafeText(value string) bool {
	for _, r := range value {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			return false
		}
	}
	return true
}
