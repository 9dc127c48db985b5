package dto

import (
	"fmt"
	"html"
	"strings"

	"github.com/yigit/schoolportal/internal/app/models"
)

// UserListSeparator joins lines of the /users listing
const UserListSeparator = "<br>"

// FormatUserList renders the plain user listing, one user per line.
// Names are HTML-escaped since the listing is served as text/html.
func FormatUserList(users []*models.User) string {
	lines := make([]string, 0, len(users))
	for _, u := range users {
		lines = append(lines, fmt.Sprintf("ID: %d, Name: %s, Role: %s",
			u.ID, html.EscapeString(u.Name), html.EscapeString(string(u.RoleType))))
	}
	return strings.Join(lines, UserListSeparator)
}
