package redmine

import "context"

// User represents a Redmine user account.
type User struct {
	ID              uint64        `json:"id"                          yaml:"id"`
	Login           string        `json:"login,omitempty"             yaml:"login,omitempty"`
	Admin           bool          `json:"admin,omitempty"             yaml:"admin,omitempty"`
	Firstname       string        `json:"firstname,omitempty"         yaml:"firstname,omitempty"`
	Lastname        string        `json:"lastname,omitempty"          yaml:"lastname,omitempty"`
	Mail            string        `json:"mail,omitempty"              yaml:"mail,omitempty"`
	CreatedOn       *Timestamp    `json:"created_on,omitempty"        yaml:"created_on,omitempty"`
	UpdatedOn       *Timestamp    `json:"updated_on,omitempty"        yaml:"updated_on,omitempty"`
	LastLoginOn     *Timestamp    `json:"last_login_on,omitempty"     yaml:"last_login_on,omitempty"`
	PasswdChangedOn *Timestamp    `json:"passwd_changed_on,omitempty" yaml:"passwd_changed_on,omitempty"`
	// APIKey is only returned for the current user or to admins.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
	// Status is only returned to admins: 1 active, 2 registered, 3 locked.
	Status       uint64        `json:"status,omitempty"        yaml:"status,omitempty"`
	CustomFields []CustomField `json:"custom_fields,omitempty" yaml:"custom_fields,omitempty"`
	// Memberships is filled when the include parameter requests it.
	Memberships []Membership `json:"memberships,omitempty" yaml:"memberships,omitempty"`
	// Groups is filled when the include parameter requests it.
	Groups []IDName `json:"groups,omitempty" yaml:"groups,omitempty"`
}

// UserStatus filters the user list by account status.
type UserStatus string

// User status filter values.
const (
	UserStatusActive     UserStatus = "1"
	UserStatusRegistered UserStatus = "2"
	UserStatusLocked     UserStatus = "3"
)

// UsersListOptions are the optional filters for listing users.
type UsersListOptions struct {
	// Status filters by account status.
	Status *UserStatus
	// Name matches login, firstname, lastname, and with a space also
	// "firstname lastname".
	Name *string
	// GroupID restricts the list to members of the group.
	GroupID *uint64
}

// UserInclude names associated data fetched along with a user.
type UserInclude string

// User include values.
const (
	UserIncludeMemberships UserInclude = "memberships"
	UserIncludeGroups      UserInclude = "groups"
)

// UserGetOptions are the options for fetching a single user.
type UserGetOptions struct {
	Include []UserInclude
}

// UserCreateRequest represents a request to create a user.
type UserCreateRequest struct {
	Login     string `json:"login"              yaml:"login"`
	Firstname string `json:"firstname"          yaml:"firstname"`
	Lastname  string `json:"lastname"           yaml:"lastname"`
	Mail      string `json:"mail"               yaml:"mail"`
	Password  string `json:"password,omitempty" yaml:"password,omitempty"`
	// GeneratePassword lets Redmine pick a password; preferred over
	// sending one.
	GeneratePassword bool          `json:"generate_password,omitempty" yaml:"generate_password,omitempty"`
	AuthSourceID     *uint64       `json:"auth_source_id,omitempty"    yaml:"auth_source_id,omitempty"`
	MailNotification string        `json:"mail_notification,omitempty" yaml:"mail_notification,omitempty"`
	MustChangePasswd bool          `json:"must_change_passwd,omitempty" yaml:"must_change_passwd,omitempty"`
	CustomFields     []CustomField `json:"custom_fields,omitempty"     yaml:"custom_fields,omitempty"`
}

// UserUpdateRequest represents a request to update a user. Nil fields are
// left unchanged.
type UserUpdateRequest struct {
	Login            *string       `json:"login,omitempty"             yaml:"login,omitempty"`
	Firstname        *string       `json:"firstname,omitempty"         yaml:"firstname,omitempty"`
	Lastname         *string       `json:"lastname,omitempty"          yaml:"lastname,omitempty"`
	Mail             *string       `json:"mail,omitempty"              yaml:"mail,omitempty"`
	Password         *string       `json:"password,omitempty"          yaml:"password,omitempty"`
	AuthSourceID     *uint64       `json:"auth_source_id,omitempty"    yaml:"auth_source_id,omitempty"`
	MailNotification *string       `json:"mail_notification,omitempty" yaml:"mail_notification,omitempty"`
	MustChangePasswd *bool         `json:"must_change_passwd,omitempty" yaml:"must_change_passwd,omitempty"`
	CustomFields     []CustomField `json:"custom_fields,omitempty"     yaml:"custom_fields,omitempty"`
}

// UsersClient provides access to the users resource. List operations
// require admin privileges on the API key.
type UsersClient interface {
	// List fetches all users matching opts across all pages.
	List(ctx context.Context, opts *UsersListOptions) ([]User, error)
	// ListPage fetches a single page of users.
	ListPage(ctx context.Context, opts *UsersListOptions, offset, limit int) (*ResponsePage[User], error)
	// Get fetches one user by id.
	Get(ctx context.Context, id uint64, opts *UserGetOptions) (*User, error)
	// Current fetches the user owning the API key (or the impersonated
	// user).
	Current(ctx context.Context, opts *UserGetOptions) (*User, error)
	// MyAccount fetches the current user's account, including the API key.
	MyAccount(ctx context.Context) (*User, error)
	Create(ctx context.Context, req *UserCreateRequest) (*User, error)
	Update(ctx context.Context, id uint64, req *UserUpdateRequest) error
	Delete(ctx context.Context, id uint64) error
}
