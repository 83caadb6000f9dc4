// Defines user objects (people and bots).

package notion

// UserType discriminates user variants.
type UserType string

const (
	UserTypePerson UserType = "person"
	UserTypeBot    UserType = "bot"
)

// User represents a Notion user: a person or a bot.
// Partial user objects carrying only the ID appear in created_by,
// last_edited_by, and people property values.
// Reference: https://developers.notion.com/reference/user
type User struct {
	Object string   `json:"object,omitempty"` // Always "user" when set.
	ID     ObjectID `json:"id"`
	Type   UserType `json:"type,omitempty"`

	Name      string  `json:"name,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`

	Person *PersonDetails `json:"person,omitempty"`
	Bot    *Bot           `json:"bot,omitempty"`
}

// PersonDetails holds person-specific fields.
type PersonDetails struct {
	Email string `json:"email,omitempty"`
}

// Bot holds bot-specific fields.
type Bot struct {
	Owner         *BotOwner `json:"owner,omitempty"`
	WorkspaceName string    `json:"workspace_name,omitempty"`
}

// BotOwner describes who owns a bot integration.
type BotOwner struct {
	Type string `json:"type"` // "workspace" or "user"

	Workspace bool  `json:"workspace,omitempty"`
	User      *User `json:"user,omitempty"`
}

// UserRef returns a partial user object referencing id. This is the
// form accepted when writing people property values.
func UserRef(id ObjectID) User {
	return User{Object: "user", ID: id}
}

// Validate checks the user object shape. Partial objects (ID only)
// are valid.
func (u *User) Validate() error {
	if u.Object != "" && u.Object != "user" {
		return InvalidField("object", `must be "user"`)
	}
	if err := u.ID.Validate(); err != nil {
		return err
	}
	switch u.Type {
	case "":
		// Partial object.
	case UserTypePerson:
		if u.Bot != nil {
			return InvalidField("type", `payload does not match type "person"`)
		}
	case UserTypeBot:
		if u.Person != nil {
			return InvalidField("type", `payload does not match type "bot"`)
		}
	default:
		return InvalidField("type", "unknown user type "+string(u.Type))
	}
	if u.Person != nil && u.Person.Email != "" {
		if err := validateEmail("person.email", u.Person.Email); err != nil {
			return err
		}
	}
	return nil
}
