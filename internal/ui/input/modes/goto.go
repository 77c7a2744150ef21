package modes

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"

	"carousel/internal/ui/input/types"
)

// GoToMode reads a 1-based page number
type GoToMode struct {
	TextInputMode
}

func NewGoToMode(ti *textinput.Model) *GoToMode {
	ti.CharLimit = 4
	ti.Validate = func(s string) error {
		if s == "" {
			return nil
		}
		if _, err := strconv.Atoi(s); err != nil {
			return fmt.Errorf("not a number: %q", s)
		}
		return nil
	}
	return &GoToMode{
		TextInputMode: NewTextInputMode(types.ModeGoTo, "goto", ti),
	}
}

// ParsePage converts submitted text into a zero-based index
func ParsePage(text string) (int, error) {
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("not a page number: %q", text)
	}
	if n < 1 {
		return 0, fmt.Errorf("pages start at 1, got %d", n)
	}
	return n - 1, nil
}
