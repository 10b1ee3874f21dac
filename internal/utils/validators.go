package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/komachi-dev/komachi/internal/errors"
)

type ThreadTitleValidator struct{}

func (v *ThreadTitleValidator) Title(title string) error {
	if utf8.RuneCountInString(title) > 255 {
		return errors.Validation("Title is too long")
	}
	if strings.TrimSpace(title) == "" {
		return errors.Validation("Title is required")
	}
	return nil
}

type PostValidator struct{}

func (v *PostValidator) Body(body string) error {
	if len(body) == 0 {
		return errors.Validation("Body is required")
	}
	if utf8.RuneCountInString(body) > 10_000 {
		return errors.Validation("Body is too long")
	}
	return nil
}

func (v *PostValidator) Name(name string) error {
	// empty name is fine, it renders as the anonymous placeholder
	if utf8.RuneCountInString(name) > 255 {
		return errors.Validation("Name is too long")
	}
	return nil
}

type BoardKeyValidator struct{}

func (v *BoardKeyValidator) Key(key string) error {
	if key == "" {
		return errors.Validation("Board key is required")
	}
	if utf8.RuneCountInString(key) > 32 {
		return errors.Validation("Board key is too long")
	}
	for _, r := range key {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
			return errors.Validation("Board key may contain only a-z, 0-9 and '-'")
		}
	}
	return nil
}

func (v *BoardKeyValidator) Title(title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.Validation("Board title is required")
	}
	if utf8.RuneCountInString(title) > 255 {
		return errors.Validation("Board title is too long")
	}
	return nil
}
