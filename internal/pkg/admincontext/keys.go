package admincontext

// Shared Locals/session keys used across controllers and middlewares
const (
	AuthKey          = "authenticated"
	KeyAdminID       = "admin_id"
	KeyAdminEmail    = "admin_email"
	KeyAdminName     = "admin_name"
	KeySubRole       = "admin_sub_role"
	KeyToken         = "api_token"
	KeyValidatedAt   = "token_validated_at"
	KeyFromProtected = "from_protected"
	KeyIsAdmin       = "isAdmin"
)
