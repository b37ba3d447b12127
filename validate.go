package cmdref

import (
	"fmt"
	"strings"
)

// ValidationReason identifies why a corpus entry is invalid.
type ValidationReason string

// Validation error reasons.
const (
	ErrDuplicateName   ValidationReason = "duplicate_name"
	ErrUnknownPlatform ValidationReason = "unknown_platform"
	ErrEmptySyntax     ValidationReason = "empty_syntax"
)

// ValidationError describes a single validation failure in a corpus.
type ValidationError struct {
	Index    int              // Position of the offending command in the corpus
	Name     string           // Command name
	Reason   ValidationReason // Why this entry is invalid
	Platform string           // Platform id for unknown_platform errors
	FirstAt  int              // Position of the first definition for duplicate_name errors
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	switch e.Reason {
	case ErrDuplicateName:
		return fmt.Sprintf("command %d: %q already defined at position %d", e.Index, e.Name, e.FirstAt)
	case ErrUnknownPlatform:
		return fmt.Sprintf("command %d: %q references unknown platform %q", e.Index, e.Name, e.Platform)
	case ErrEmptySyntax:
		return fmt.Sprintf("command %d: %q has no syntax pattern", e.Index, e.Name)
	default:
		return fmt.Sprintf("command %d: unknown error for %q", e.Index, e.Name)
	}
}

// ValidateCorpus checks a corpus for duplicate names, platform tags without a
// matching descriptor and commands without a syntax pattern. Returns nil if the
// corpus is valid. Names are compared case-insensitively.
func ValidateCorpus(corpus *Corpus) []ValidationError {
	if corpus == nil {
		return nil
	}

	known := make(map[string]bool, len(corpus.Platforms))
	for _, p := range corpus.Platforms {
		known[p.ID] = true
	}

	seen := make(map[string]int, len(corpus.Commands))
	var errs []ValidationError

	for i, cmd := range corpus.Commands {
		key := strings.ToLower(cmd.Name)
		if first, dup := seen[key]; dup {
			errs = append(errs, ValidationError{
				Index:   i,
				Name:    cmd.Name,
				Reason:  ErrDuplicateName,
				FirstAt: first,
			})
		} else {
			seen[key] = i
		}

		if strings.TrimSpace(cmd.SyntaxPattern) == "" {
			errs = append(errs, ValidationError{
				Index:  i,
				Name:   cmd.Name,
				Reason: ErrEmptySyntax,
			})
		}

		for _, tag := range cmd.Platforms {
			if !known[tag.ID] {
				errs = append(errs, ValidationError{
					Index:    i,
					Name:     cmd.Name,
					Reason:   ErrUnknownPlatform,
					Platform: tag.ID,
				})
			}
		}
	}

	return errs
}
