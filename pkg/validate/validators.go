package validate

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// MinLength rejects values shorter than min runes. Empty messages fall back
// to a generated one.
func MinLength(min int, message string) Validator {
	return Func(func(text string) error {
		if utf8.RuneCountInString(text) >= min {
			return nil
		}
		msg := message
		if msg == "" {
			msg = fmt.Sprintf("must be at least %d characters", min)
		}
		return NewInvalidValueError(msg)
	})
}

// MaxLength rejects values longer than max runes.
func MaxLength(max int, message string) Validator {
	return Func(func(text string) error {
		if utf8.RuneCountInString(text) <= max {
			return nil
		}
		msg := message
		if msg == "" {
			msg = fmt.Sprintf("must be at most %d characters", max)
		}
		return NewInvalidValueError(msg)
	})
}

// Pattern rejects values that do not match the anchored expression. The
// expression is compiled once at construction.
func Pattern(expr, message string) (Validator, error) {
	re, err := regexp.Compile("^(?:" + expr + ")$")
	if err != nil {
		return nil, fmt.Errorf("validate: compile pattern %q: %w", expr, err)
	}
	return Func(func(text string) error {
		if re.MatchString(text) {
			return nil
		}
		msg := message
		if msg == "" {
			msg = fmt.Sprintf("must match %s", expr)
		}
		return NewInvalidValueError(msg)
	}), nil
}

// MustPattern is Pattern for statically known expressions; it panics on a
// compile failure.
func MustPattern(expr, message string) Validator {
	v, err := Pattern(expr, message)
	if err != nil {
		panic(err)
	}
	return v
}

// OneOf rejects values outside the allowed set.
func OneOf(allowed []string, message string) Validator {
	set := make(map[string]struct{}, len(allowed))
	for _, value := range allowed {
		set[value] = struct{}{}
	}
	return Func(func(text string) error {
		if _, ok := set[text]; ok {
			return nil
		}
		msg := message
		if msg == "" {
			msg = "value is not one of the allowed options"
		}
		return NewInvalidValueError(msg)
	})
}

// Invisible wraps a validator so its rejections keep the field invalid
// without being rendered.
func Invisible(v Validator) Validator {
	return Func(func(text string) error {
		err := v.Validate(text)
		if err == nil {
			return nil
		}
		invalid := AsInvalid(err)
		return &InvalidValueError{Message: invalid.Message, Invisible: true}
	})
}
