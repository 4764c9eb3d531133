package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Rules:
//   - the database DSN must be set;
//   - the session sign key and session duration must be set;
//   - the HTTP listen address must be set.
//
// OAuth and mail settings are intentionally not required: providers without
// credentials are not registered, and an unconfigured mail relay degrades
// notifications to log-only.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Auth.SessionSignKey == "" || cfg.Auth.SessionDuration == 0 {
		return ErrInvalidAuthConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
