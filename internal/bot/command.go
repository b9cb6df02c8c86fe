package bot

import (
	"strconv"
	"strings"
)

// CommandKind tags the callback-payload union. Payloads are the informal
// `kind:value` strings carried by inline buttons; anything that does not
// parse into a known kind is dropped at the boundary.
type CommandKind string

const (
	CmdStartFind   CommandKind = "find_rumor"
	CmdStartSubmit CommandKind = "add_rumor"
	CmdSelectCity  CommandKind = "city"
	CmdSelectAge   CommandKind = "age"
	CmdSelectPage  CommandKind = "page"
)

type Command struct {
	Kind  CommandKind
	Value string
}

// ParseCommand validates a raw callback payload. The second return is false
// for unrecognized kinds, missing values and non-numeric age/page values.
func ParseCommand(data string) (Command, bool) {
	kind, value, hasValue := strings.Cut(data, ":")

	switch CommandKind(kind) {
	case CmdStartFind, CmdStartSubmit:
		if hasValue {
			return Command{}, false
		}
		return Command{Kind: CommandKind(kind)}, true

	case CmdSelectCity:
		if !hasValue || value == "" {
			return Command{}, false
		}
		return Command{Kind: CmdSelectCity, Value: value}, true

	case CmdSelectAge, CmdSelectPage:
		if !hasValue {
			return Command{}, false
		}
		if _, err := strconv.Atoi(value); err != nil {
			return Command{}, false
		}
		return Command{Kind: CommandKind(kind), Value: value}, true
	}

	return Command{}, false
}

func (c Command) Int() int {
	n, _ := strconv.Atoi(c.Value)
	return n
}
