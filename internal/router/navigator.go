package router

type Decision int

const (
	Proceed Decision = iota
	Reload
)

func (d Decision) String() string {
	switch d {
	case Proceed:
		return "proceed"
	case Reload:
		return "reload"
	}
	return "unknown"
}

// Guard inspects a pending navigation before it commits.
type Guard func(to, from string) Decision

// ReloadOnHome forces a full reload when the client comes back to the root
// from any other page.
func ReloadOnHome(to, from string) Decision {
	if to == Root && from != Root {
		return Reload
	}
	return Proceed
}

type Transition struct {
	From     string
	To       Match
	Decision Decision
}

type Navigator struct {
	table  *Table
	guards []Guard
}

// NewNavigator without guards lets every navigation through.
func NewNavigator(table *Table, guards ...Guard) *Navigator {
	return &Navigator{
		table:  table,
		guards: guards,
	}
}

func (n *Navigator) Table() *Table {
	return n.table
}

// Navigate resolves the destination first; guards never see unknown paths.
func (n *Navigator) Navigate(from, to string) (Transition, error) {
	m, err := n.table.Resolve(to)
	if err != nil {
		return Transition{}, err
	}
	t := Transition{
		From:     from,
		To:       m,
		Decision: Proceed,
	}
	for _, guard := range n.guards {
		if guard(to, from) == Reload {
			t.Decision = Reload
			break
		}
	}
	return t, nil
}
