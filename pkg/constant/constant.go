package constant

const (
	// Token classes carried in the token_type claim.
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	// Token event kinds persisted on rotation failures.
	TokenEventRotationNoToken      = "rotation_failed_no_token"
	TokenEventRotationRevokedToken = "rotation_failed_revoked_token"

	// Audit event names.
	EventLoginFailed         = "login.failed"
	EventUnlockEmailSent     = "unlock.email_sent"
	EventUnlockEmailFailed   = "unlock.email_failed"
	EventPasswordEmailSent   = "password.email_sent"
	EventPasswordEmailFailed = "password.email_failed"

	UnlockCodeLength     = 6
	TempPasswordLength   = 16
	MaxUnlockCodeResends = 1
)
