package clinic

import (
	"fmt"
	"strings"
)

type Staff struct {
	Name    string
	Role    string
	Contact string
}

func (s Staff) DisplayName() string { return s.Name }

func (s Staff) Display() string {
	return fmt.Sprintf("%s (%s), Contact: %s", s.Name, s.Role, s.Contact)
}

// StaffTable renders staff as fixed-width columns: name 25, role 15,
// contact 15, under a 55 character rule.
func StaffTable(staff []Staff) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-25s%-15s%-15s\n", "Name", "Role", "Contact")
	b.WriteString(strings.Repeat("-", 55) + "\n")
	for _, s := range staff {
		fmt.Fprintf(&b, "%-25s%-15s%-15s\n", s.Name, s.Role, s.Contact)
	}
	return b.String()
}
