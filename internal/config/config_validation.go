// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.OTP.TTL <= 0 {
		return ErrInvalidOTPConfigs
	}

	if cfg.Session.CookieName == "" || cfg.Session.TTL <= 0 {
		return ErrInvalidSessionConfigs
	}

	switch cfg.Mail.Profile {
	case MailProfileDevelopment:
		if cfg.Mail.Host == "" || cfg.Mail.Port == 0 {
			return ErrInvalidMailConfigs
		}
	case MailProfileProduction:
		if cfg.Mail.Host == "" || cfg.Mail.Port == 0 ||
			cfg.Mail.Username == "" || cfg.Mail.Password == "" {
			return ErrInvalidMailConfigs
		}
	default:
		return ErrInvalidMailConfigs
	}

	return nil
}
