package constants

const (
	// Context Keys
	ContextKeyIsLoggedIn = "isLoggedIn"
	ContextKeyIsAdmin    = "isAdmin"
	ContextKeyUserEmail  = "userEmail"
	ContextKeySettings   = "settings"

	// Session Keys
	SessionKeyUserID   = "user_id"
	SessionKeyUserRole = "user_role"
	SessionKeyEmail    = "user_email"

	// Setting Keys
	SettingSiteTitle       = "site_title"
	SettingSiteDescription = "site_description"
	SettingSiteLogo        = "site_logo"
	SettingSEO             = "seo"

	// User roles
	RoleAdmin  = "admin"
	RoleEditor = "editor"

	// Article statuses
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)
