package cli

import (
	"errors"
	"fmt"
	"strconv"
)

var errNoSelection = errors.New("no experience selected")

// resolveExperienceID turns a command argument into an experience id. A
// small positive integer selects from the most recent listing by position;
// anything else is taken as a raw id. With no argument the user is prompted
// for one.
func (a *App) resolveExperienceID(args []string, cmd string) (string, error) {
	if len(args) > 1 {
		fmt.Fprintf(a.out, "Usage: %s <n|id>\n", cmd)
		return "", errNoSelection
	}

	var sel string
	if len(args) == 1 {
		sel = args[0]
	} else {
		entered, err := GetSimpleText(a.reader, fmt.Sprintf("Which experience to %s? (number from 'list' or id)", cmd), a.out)
		if err != nil {
			return "", err
		}
		sel = entered
	}
	if sel == "" {
		return "", errNoSelection
	}

	if n, err := strconv.Atoi(sel); err == nil {
		a.mu.Lock()
		defer a.mu.Unlock()
		if n < 1 || n > len(a.lastList) {
			fmt.Fprintf(a.out, "No item %d in the last listing (run 'list' first).\n", n)
			return "", errNoSelection
		}
		return a.lastList[n-1].ID, nil
	}
	return sel, nil
}
