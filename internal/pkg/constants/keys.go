package constants

// viper keys, resolved from the environment (upper-cased) with defaults set in config.Init.
const (
	ViperKeyHTTPAddr      = "http_addr"
	ViperKeyDatabaseURL   = "database_url"
	ViperKeySiteOrigin    = "site_origin"
	ViperKeyLeadToEmail   = "lead_to_email"
	ViperKeyLeadFromEmail = "lead_from_email"
	ViperKeyResendAPIKey  = "resend_api_key"
)
