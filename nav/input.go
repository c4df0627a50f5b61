package nav

import "strings"

// Action is a navigation request decoded from input.
type Action int

const (
	ActionNone Action = iota
	ActionNext
	ActionPrevious
	ActionFirst
	ActionLast
	ActionQuit
)

// String returns the string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionNext:
		return "next"
	case ActionPrevious:
		return "previous"
	case ActionFirst:
		return "first"
	case ActionLast:
		return "last"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Button is a mouse button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
	ButtonBack
	ButtonForward
)

// keyActions maps key names to actions. Named keys are matched case
// insensitively; single characters are matched exactly so that g and G
// stay distinct.
var keyActions = map[string]Action{
	"left":             ActionPrevious,
	"arrowleft":        ActionPrevious,
	"up":               ActionPrevious,
	"arrowup":          ActionPrevious,
	"backspace":        ActionPrevious,
	"navigateprevious": ActionPrevious,
	"pageup":           ActionPrevious,
	"h":                ActionPrevious,
	"k":                ActionPrevious,
	"p":                ActionPrevious,

	"right":        ActionNext,
	"arrowright":   ActionNext,
	"down":         ActionNext,
	"arrowdown":    ActionNext,
	"enter":        ActionNext,
	"space":        ActionNext,
	" ":            ActionNext,
	"navigatenext": ActionNext,
	"pagedown":     ActionNext,
	"l":            ActionNext,
	"j":            ActionNext,
	"n":            ActionNext,

	"home": ActionFirst,
	"g":    ActionFirst,
	"end":  ActionLast,
	"G":    ActionLast,

	"escape": ActionQuit,
	"q":      ActionQuit,
}

// ActionForKey returns the action bound to a key, such as "Right", "Space"
// or "j". Unbound keys return ActionNone.
func ActionForKey(name string) Action {
	if len(name) == 1 {
		return keyActions[name]
	}
	return keyActions[strings.ToLower(name)]
}

// ActionForButton returns the action bound to a mouse button press.
// Buttons are bound independently of the pointer position; see
// Cursor.PointerActivate for position-based touch navigation.
func ActionForButton(b Button) Action {
	switch b {
	case ButtonLeft, ButtonForward:
		return ActionNext
	case ButtonRight, ButtonBack:
		return ActionPrevious
	default:
		return ActionNone
	}
}
