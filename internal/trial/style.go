package trial

import (
	"errors"
	"fmt"
)

var ErrUnknownLanguage = errors.New("unknown programming language")

// Language is the language the verdict script is written in.
type Language string

const (
	Python     Language = "python"
	TypeScript Language = "typescript"
	Rust       Language = "rust"
	Bash       Language = "bash"
)

// Validate rejects languages the jury runners do not know.
func (l Language) Validate() error {
	switch l {
	case Python, TypeScript, Rust, Bash:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownLanguage, string(l))
}

// Style is display metadata. The contract stores it verbatim.
type Style struct {
	Background Background `json:"background"`
	Font       Font       `json:"font"`
}

// Background is either a plain value (colour, image URL) or a video.
type Background struct {
	Value *string `json:"value,omitempty"`
	Video *Video  `json:"video,omitempty"`
}

type Video struct {
	Provider string `json:"provider"`
	ID       string `json:"id"`
}

type Font struct {
	Family string `json:"family"`
	Color  string `json:"color"`
}
